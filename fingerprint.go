package docwatch

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex-encoded SHA-256 digest of the text's UTF-8
// bytes. It is the sole signal used for page change detection: byte-identical
// text always yields an identical fingerprint, and any single-byte change
// yields a different one. Callers must not invoke it for pages whose text
// extraction failed; such records carry no fingerprint at all.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
