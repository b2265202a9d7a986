package docwatch

import (
	"context"
	"time"
)

// Run records the outcome of a single monitoring run.
type Run struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"startedAt"`
	HasChanges   bool      `json:"hasChanges"`
	FeedChanges  int       `json:"feedChanges"`
	PageChanges  int       `json:"pageChanges"`
	SnapshotHash string    `json:"snapshotHash"`
}

// RunLog records completed runs and serves run history queries.
type RunLog interface {
	// RecordRun persists the outcome of a finished run. The snapshot is
	// hashed so identical states across runs are recognizable in history.
	RecordRun(ctx context.Context, snap *Snapshot, changes *ChangeSet) (*Run, error)

	// FindRuns returns the most recent runs, newest first, up to limit.
	// A non-positive limit returns all runs.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
