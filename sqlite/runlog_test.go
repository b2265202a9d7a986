package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docwatch"
	"github.com/fwojciec/docwatch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(ts time.Time) *docwatch.Snapshot {
	return &docwatch.Snapshot{
		Timestamp: ts,
		Sources: []docwatch.Record{
			{
				SourceID: "go-blog",
				Kind:     docwatch.KindFeed,
				Entries:  []docwatch.Entry{{Title: "Go 1.25 released", Link: "https://go.dev/blog/go1.25"}},
			},
		},
	}
}

func TestRunLog_RecordRun(t *testing.T) {
	t.Parallel()

	t.Run("records run with generated ID and snapshot hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()

		snap := testSnapshot(time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC))
		changes := docwatch.NewChangeSet()
		changes.HasChanges = true
		changes.FeedChanges["go-blog"] = docwatch.FeedChange{
			Status:     docwatch.FeedStatusNewSource,
			EntryCount: 1,
		}

		run, err := log.RecordRun(ctx, snap, changes)
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID)
		assert.NotEmpty(t, run.SnapshotHash)
		assert.True(t, run.HasChanges)
		assert.Equal(t, 1, run.FeedChanges)
		assert.Equal(t, 0, run.PageChanges)
		assert.Equal(t, snap.Timestamp, run.StartedAt)
	})

	t.Run("identical snapshots hash identically across runs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()

		first, err := log.RecordRun(ctx, testSnapshot(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)), nil)
		require.NoError(t, err)
		second, err := log.RecordRun(ctx, testSnapshot(time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)), nil)
		require.NoError(t, err)

		assert.Equal(t, first.SnapshotHash, second.SnapshotHash)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("page fetch time does not affect the snapshot hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()

		pageSnapshot := func(ts time.Time) *docwatch.Snapshot {
			return &docwatch.Snapshot{
				Timestamp: ts,
				Sources: []docwatch.Record{
					{
						SourceID: "go-docs",
						Kind:     docwatch.KindPage,
						Page: &docwatch.PageContent{
							URL:         "https://go.dev/doc/",
							FetchedAt:   ts,
							ContentHash: "abc123",
						},
					},
				},
			}
		}

		first, err := log.RecordRun(ctx, pageSnapshot(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)), nil)
		require.NoError(t, err)
		second, err := log.RecordRun(ctx, pageSnapshot(time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)), nil)
		require.NoError(t, err)

		assert.Equal(t, first.SnapshotHash, second.SnapshotHash)
	})

	t.Run("different page content changes the snapshot hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()
		ts := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

		snapWithHash := func(hash string) *docwatch.Snapshot {
			return &docwatch.Snapshot{
				Timestamp: ts,
				Sources: []docwatch.Record{
					{
						SourceID: "go-docs",
						Kind:     docwatch.KindPage,
						Page:     &docwatch.PageContent{URL: "https://go.dev/doc/", FetchedAt: ts, ContentHash: hash},
					},
				},
			}
		}

		first, err := log.RecordRun(ctx, snapWithHash("abc123"), nil)
		require.NoError(t, err)
		second, err := log.RecordRun(ctx, snapWithHash("def456"), nil)
		require.NoError(t, err)

		assert.NotEqual(t, first.SnapshotHash, second.SnapshotHash)
	})

	t.Run("treats nil changes as no changes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)

		run, err := log.RecordRun(context.Background(), testSnapshot(time.Now()), nil)
		require.NoError(t, err)
		assert.False(t, run.HasChanges)
		assert.Zero(t, run.FeedChanges)
		assert.Zero(t, run.PageChanges)
	})

	t.Run("returns EINVALID for nil snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)

		_, err := log.RecordRun(context.Background(), nil, nil)
		require.Error(t, err)
		assert.Equal(t, docwatch.EINVALID, docwatch.ErrorCode(err))
	})
}

func TestRunLog_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs newest first with limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()

		base := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			_, err := log.RecordRun(ctx, testSnapshot(base.Add(time.Duration(i)*time.Hour)), nil)
			require.NoError(t, err)
		}

		runs, err := log.FindRuns(ctx, 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, base.Add(2*time.Hour), runs[0].StartedAt)
		assert.Equal(t, base.Add(time.Hour), runs[1].StartedAt)
	})

	t.Run("non-positive limit returns all runs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)
		ctx := context.Background()

		base := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			_, err := log.RecordRun(ctx, testSnapshot(base.Add(time.Duration(i)*time.Hour)), nil)
			require.NoError(t, err)
		}

		runs, err := log.FindRuns(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 3)
	})

	t.Run("returns empty slice when no runs exist", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		log := sqlite.NewRunLog(db)

		runs, err := log.FindRuns(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
