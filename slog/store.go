package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docwatch"
)

// Ensure LoggingStore implements docwatch.SnapshotStore.
var _ docwatch.SnapshotStore = (*LoggingStore)(nil)

// LoggingStore wraps a SnapshotStore with structured logging.
type LoggingStore struct {
	next   docwatch.SnapshotStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next docwatch.SnapshotStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// LoadLatest delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) LoadLatest(ctx context.Context) (*docwatch.Snapshot, error) {
	begin := time.Now()
	snap, err := s.next.LoadLatest(ctx)
	if err != nil {
		s.logger.Error("load latest snapshot",
			slog.Duration("duration", time.Since(begin)),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	s.logger.Info("load latest snapshot",
		slog.Int("sources", len(snap.Sources)),
		slog.Bool("empty", snap.Empty()),
		slog.Duration("duration", time.Since(begin)),
	)
	return snap, nil
}

// SaveLatest delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) SaveLatest(ctx context.Context, snap *docwatch.Snapshot) error {
	begin := time.Now()
	err := s.next.SaveLatest(ctx, snap)
	if err != nil {
		s.logger.Error("save latest snapshot",
			slog.Duration("duration", time.Since(begin)),
			slog.String("err", err.Error()),
		)
		return err
	}
	s.logger.Info("save latest snapshot",
		slog.Int("sources", len(snap.Sources)),
		slog.Duration("duration", time.Since(begin)),
	)
	return nil
}

// SaveVersion delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) SaveVersion(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) error {
	begin := time.Now()
	err := s.next.SaveVersion(ctx, snap, changes)
	if err != nil {
		s.logger.Error("save versioned snapshot",
			slog.Duration("duration", time.Since(begin)),
			slog.String("err", err.Error()),
		)
		return err
	}
	s.logger.Info("save versioned snapshot",
		slog.Int("feed_changes", len(changes.FeedChanges)),
		slog.Int("page_changes", len(changes.PageChanges)),
		slog.Duration("duration", time.Since(begin)),
	)
	return nil
}
