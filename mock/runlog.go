package mock

import (
	"context"

	"github.com/fwojciec/docwatch"
)

var _ docwatch.RunLog = (*RunLog)(nil)

// RunLog is a mock implementation of docwatch.RunLog.
type RunLog struct {
	RecordRunFn func(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (*docwatch.Run, error)
	FindRunsFn  func(ctx context.Context, limit int) ([]*docwatch.Run, error)
}

func (l *RunLog) RecordRun(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (*docwatch.Run, error) {
	return l.RecordRunFn(ctx, snap, changes)
}

func (l *RunLog) FindRuns(ctx context.Context, limit int) ([]*docwatch.Run, error) {
	return l.FindRunsFn(ctx, limit)
}
