package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/docwatch"
	"github.com/fwojciec/docwatch/mock"
	docslog "github.com/fwojciec/docwatch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_LoadLatest(t *testing.T) {
	t.Parallel()

	t.Run("logs source count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotStore{
			LoadLatestFn: func(ctx context.Context) (*docwatch.Snapshot, error) {
				return &docwatch.Snapshot{
					Timestamp: time.Now(),
					Sources:   []docwatch.Record{{SourceID: "go-blog", Kind: docwatch.KindFeed}},
				}, nil
			},
		}

		store := docslog.NewLoggingStore(inner, logger)
		snap, err := store.LoadLatest(context.Background())

		require.NoError(t, err)
		require.NotNil(t, snap)
		output := buf.String()
		assert.Contains(t, output, "load latest snapshot")
		assert.Contains(t, output, "sources=1")
		assert.Contains(t, output, "empty=false")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotStore{
			LoadLatestFn: func(ctx context.Context) (*docwatch.Snapshot, error) {
				return nil, errors.New("disk error")
			},
		}

		store := docslog.NewLoggingStore(inner, logger)
		_, err := store.LoadLatest(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk error\"")
	})
}

func TestLoggingStore_SaveLatest(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		saved := false
		inner := &mock.SnapshotStore{
			SaveLatestFn: func(ctx context.Context, snap *docwatch.Snapshot) error {
				saved = true
				return nil
			},
		}

		store := docslog.NewLoggingStore(inner, logger)
		err := store.SaveLatest(context.Background(), &docwatch.Snapshot{Timestamp: time.Now()})

		require.NoError(t, err)
		assert.True(t, saved)
		assert.Contains(t, buf.String(), "save latest snapshot")
	})
}

func TestLoggingStore_SaveVersion(t *testing.T) {
	t.Parallel()

	t.Run("logs change counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotStore{
			SaveVersionFn: func(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) error {
				return nil
			},
		}

		changes := docwatch.NewChangeSet()
		changes.HasChanges = true
		changes.FeedChanges["go-blog"] = docwatch.FeedChange{Status: docwatch.FeedStatusNewSource}

		store := docslog.NewLoggingStore(inner, logger)
		err := store.SaveVersion(context.Background(), &docwatch.Snapshot{Timestamp: time.Now()}, changes)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save versioned snapshot")
		assert.Contains(t, output, "feed_changes=1")
		assert.Contains(t, output, "page_changes=0")
	})
}
