package sqlite

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docwatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docwatch.RunLog = (*RunLog)(nil)

// RunLog implements docwatch.RunLog using SQLite.
type RunLog struct {
	db *DB
}

// NewRunLog creates a new RunLog.
func NewRunLog(db *DB) *RunLog {
	return &RunLog{db: db}
}

// RecordRun persists the outcome of a finished run.
func (l *RunLog) RecordRun(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (*docwatch.Run, error) {
	if snap == nil {
		return nil, docwatch.Errorf(docwatch.EINVALID, "snapshot is required")
	}
	if changes == nil {
		changes = docwatch.NewChangeSet()
	}

	run := &docwatch.Run{
		ID:           uuid.New().String(),
		StartedAt:    snap.Timestamp.UTC(),
		HasChanges:   changes.HasChanges,
		FeedChanges:  len(changes.FeedChanges),
		PageChanges:  len(changes.PageChanges),
		SnapshotHash: hashSnapshot(snap),
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, has_changes, feed_changes, page_changes, snapshot_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.Format(time.RFC3339), boolToInt(run.HasChanges),
		run.FeedChanges, run.PageChanges, run.SnapshotHash)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns returns the most recent runs, newest first.
func (l *RunLog) FindRuns(ctx context.Context, limit int) ([]*docwatch.Run, error) {
	query := `
		SELECT id, started_at, has_changes, feed_changes, page_changes, snapshot_hash
		FROM runs
		ORDER BY started_at DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docwatch.Run
	for rows.Next() {
		var run docwatch.Run
		var startedAt string
		var hasChanges int

		if err := rows.Scan(&run.ID, &startedAt, &hasChanges, &run.FeedChanges, &run.PageChanges, &run.SnapshotHash); err != nil {
			return nil, err
		}

		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		run.HasChanges = hasChanges != 0

		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// hashSnapshot computes xxHash of the observed state and returns a hex
// string. Timestamps (the snapshot's and each page's fetch time) are
// excluded so runs that observed the same state hash identically.
func hashSnapshot(snap *docwatch.Snapshot) string {
	records := make([]docwatch.Record, len(snap.Sources))
	copy(records, snap.Sources)
	sort.Slice(records, func(i, j int) bool { return records[i].SourceID < records[j].SourceID })

	d := xxhash.New()
	for _, rec := range records {
		_, _ = d.WriteString(rec.SourceID)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(string(rec.Kind))
		for _, e := range rec.Entries {
			_, _ = d.WriteString("\x00")
			_, _ = d.WriteString(e.Title)
			_, _ = d.WriteString("\x1f")
			_, _ = d.WriteString(e.Link)
		}
		if rec.Page != nil {
			_, _ = d.WriteString("\x00")
			_, _ = d.WriteString(rec.Page.ContentHash)
			_, _ = d.WriteString("\x1f")
			_, _ = d.WriteString(rec.Page.Err)
		}
		_, _ = d.WriteString("\x00\x00")
	}
	return fmt.Sprintf("%x", d.Sum64())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
