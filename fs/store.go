// Package fs provides file-based persistence for snapshots and reports.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docwatch"
)

const latestFile = "latest.json"

// versionTimeFormat names the audit artifacts, e.g. changes_20260826_090000.json.
const versionTimeFormat = "20060102_150405"

// Ensure SnapshotStore implements docwatch.SnapshotStore at compile time.
var _ docwatch.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists snapshots as JSON artifacts in a data directory:
// a single latest.json slot overwritten each run, plus one
// changes_<timestamp>.json audit file per run that detected changes.
// The latest slot is written atomically (temp file, then rename) so a crash
// mid-write never corrupts it.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a store rooted at the given directory.
// The directory is created on first write if it does not exist.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// version bundles a change-set with the snapshot that triggered it,
// mirroring the persisted audit artifact shape.
type version struct {
	Timestamp time.Time          `json:"timestamp"`
	Changes   *docwatch.ChangeSet `json:"changes"`
	Data      *docwatch.Snapshot  `json:"data"`
}

// LoadLatest reads the latest snapshot. A missing or unreadable artifact
// yields an empty snapshot: one over-inclusive diff beats refusing to run.
func (s *SnapshotStore) LoadLatest(ctx context.Context) (*docwatch.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, latestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &docwatch.Snapshot{}, nil
		}
		return nil, fmt.Errorf("read latest snapshot: %w", err)
	}

	var snap docwatch.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// Corrupt artifact is treated as no previous snapshot.
		return &docwatch.Snapshot{}, nil
	}
	return &snap, nil
}

// SaveLatest atomically overwrites the latest slot.
func (s *SnapshotStore) SaveLatest(ctx context.Context, snap *docwatch.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writeAtomic(latestFile, snap)
}

// SaveVersion appends a timestamp-named audit artifact.
func (s *SnapshotStore) SaveVersion(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeAtomic(s.versionName(snap.Timestamp), version{
		Timestamp: snap.Timestamp,
		Changes:   changes,
		Data:      snap,
	})
}

// versionName picks an unused artifact name for the given run timestamp.
// Timestamps have one-second resolution, so a second run landing in the
// same second gets a numbered suffix instead of overwriting the first.
func (s *SnapshotStore) versionName(ts time.Time) string {
	stamp := ts.UTC().Format(versionTimeFormat)
	name := fmt.Sprintf("changes_%s.json", stamp)
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("changes_%s_%d.json", stamp, n)
	}
}

func (s *SnapshotStore) writeAtomic(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
