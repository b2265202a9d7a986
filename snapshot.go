package docwatch

import (
	"context"
	"time"
)

// Snapshot is one run's complete observation of every monitored source.
// Sources preserves configured source order; correctness of diffing does not
// depend on it. A snapshot is built once per run and never mutated after it
// has been handed to a SnapshotStore.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Sources   []Record  `json:"sources"`
}

// Lookup returns the record for the given source ID, or nil if the snapshot
// does not contain it.
func (s *Snapshot) Lookup(sourceID string) *Record {
	for i := range s.Sources {
		if s.Sources[i].SourceID == sourceID {
			return &s.Sources[i]
		}
	}
	return nil
}

// Empty reports whether the snapshot observed no sources at all.
func (s *Snapshot) Empty() bool {
	return len(s.Sources) == 0
}

// SnapshotStore persists run snapshots. A deployment runs a store as a
// single-writer resource; no two runs share a store concurrently.
type SnapshotStore interface {
	// LoadLatest reads the persisted latest snapshot. A store with no
	// history, or with an unreadable latest artifact, returns an empty
	// snapshot rather than an error.
	LoadLatest(ctx context.Context) (*Snapshot, error)

	// SaveLatest overwrites the single latest slot. The write is atomic:
	// a crash mid-write never leaves a corrupt latest artifact.
	SaveLatest(ctx context.Context, snap *Snapshot) error

	// SaveVersion appends a timestamp-named audit artifact bundling the
	// snapshot with the change-set that it triggered. Called only for
	// runs where changes were detected.
	SaveVersion(ctx context.Context, snap *Snapshot, changes *ChangeSet) error
}
