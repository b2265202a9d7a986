package mock

import (
	"context"

	"github.com/fwojciec/docwatch"
)

var _ docwatch.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of docwatch.SnapshotStore.
type SnapshotStore struct {
	LoadLatestFn  func(ctx context.Context) (*docwatch.Snapshot, error)
	SaveLatestFn  func(ctx context.Context, snap *docwatch.Snapshot) error
	SaveVersionFn func(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) error
}

func (s *SnapshotStore) LoadLatest(ctx context.Context) (*docwatch.Snapshot, error) {
	return s.LoadLatestFn(ctx)
}

func (s *SnapshotStore) SaveLatest(ctx context.Context, snap *docwatch.Snapshot) error {
	return s.SaveLatestFn(ctx, snap)
}

func (s *SnapshotStore) SaveVersion(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) error {
	return s.SaveVersionFn(ctx, snap, changes)
}
