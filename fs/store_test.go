package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docwatch"
	"github.com/fwojciec/docwatch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(ts time.Time) *docwatch.Snapshot {
	return &docwatch.Snapshot{
		Timestamp: ts,
		Sources: []docwatch.Record{
			{
				SourceID: "agent",
				Kind:     docwatch.KindFeed,
				Entries:  []docwatch.Entry{{Title: "v1.0 released", Link: "https://example.com/v1"}},
			},
			{
				SourceID: "deprecation",
				Kind:     docwatch.KindPage,
				Page: &docwatch.PageContent{
					URL:         "https://example.com/deprecation",
					ContentHash: docwatch.Fingerprint("body"),
					TextPreview: "body",
				},
			},
		},
	}
}

func TestSnapshotStore_LoadLatest(t *testing.T) {
	t.Parallel()

	t.Run("empty store yields empty snapshot", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())

		snap, err := store.LoadLatest(context.Background())
		require.NoError(t, err)
		assert.True(t, snap.Empty())
	})

	t.Run("round-trips a saved snapshot", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())
		want := sampleSnapshot(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))

		require.NoError(t, store.SaveLatest(context.Background(), want))

		got, err := store.LoadLatest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("corrupt latest artifact is treated as no previous snapshot", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "latest.json"), []byte("{not json"), 0644))

		store := fs.NewSnapshotStore(dir)
		snap, err := store.LoadLatest(context.Background())
		require.NoError(t, err)
		assert.True(t, snap.Empty())
	})
}

func TestSnapshotStore_SaveLatest(t *testing.T) {
	t.Parallel()

	t.Run("overwrites the single latest slot", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)
		ctx := context.Background()

		first := sampleSnapshot(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC))
		second := sampleSnapshot(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))

		require.NoError(t, store.SaveLatest(ctx, first))
		require.NoError(t, store.SaveLatest(ctx, second))

		got, err := store.LoadLatest(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.Timestamp, got.Timestamp)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "latest slot is overwritten, not versioned")
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)

		require.NoError(t, store.SaveLatest(context.Background(), sampleSnapshot(time.Now())))

		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.Error(t, store.SaveLatest(ctx, sampleSnapshot(time.Now())))
	})
}

func TestSnapshotStore_SaveVersion(t *testing.T) {
	t.Parallel()

	t.Run("writes a timestamp-named audit artifact", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)
		snap := sampleSnapshot(time.Date(2026, 8, 26, 9, 30, 15, 0, time.UTC))

		changes := docwatch.NewChangeSet()
		changes.HasChanges = true
		changes.FeedChanges["agent"] = docwatch.FeedChange{
			Status:    docwatch.FeedStatusUpdatedEntries,
			NewTitles: []string{"v1.1 released"},
		}

		require.NoError(t, store.SaveVersion(context.Background(), snap, changes))

		raw, err := os.ReadFile(filepath.Join(dir, "changes_20260826_093015.json"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), "v1.1 released")
		assert.Contains(t, string(raw), "\"hasChanges\": true")
	})

	t.Run("version artifacts accumulate independently of latest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)
		ctx := context.Background()

		changes := docwatch.NewChangeSet()
		changes.HasChanges = true
		changes.PageChanges["deprecation"] = docwatch.PageChange{Status: docwatch.PageStatusUpdated, URL: "https://example.com/d"}

		first := sampleSnapshot(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC))
		second := sampleSnapshot(time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))

		require.NoError(t, store.SaveLatest(ctx, first))
		require.NoError(t, store.SaveVersion(ctx, first, changes))
		require.NoError(t, store.SaveLatest(ctx, second))
		require.NoError(t, store.SaveVersion(ctx, second, changes))

		matches, err := filepath.Glob(filepath.Join(dir, "changes_*.json"))
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("same-second runs get suffixed names instead of overwriting", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)
		ctx := context.Background()

		changes := docwatch.NewChangeSet()
		changes.HasChanges = true

		snap := sampleSnapshot(time.Date(2026, 8, 26, 9, 30, 15, 0, time.UTC))
		require.NoError(t, store.SaveVersion(ctx, snap, changes))
		require.NoError(t, store.SaveVersion(ctx, snap, changes))
		require.NoError(t, store.SaveVersion(ctx, snap, changes))

		for _, name := range []string{
			"changes_20260826_093015.json",
			"changes_20260826_093015_1.json",
			"changes_20260826_093015_2.json",
		} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, name)
		}
	})
}

func TestReportWriter_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := fs.NewReportWriter(dir)

	path, err := writer.Write("# Monitoring Report\n\nNo changes.\n", time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_20260826_090000.md"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Monitoring Report")
}
