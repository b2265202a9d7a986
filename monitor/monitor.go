// Package monitor provides run orchestration. A run fetches every
// registered source, diffs the resulting snapshot against the persisted
// latest snapshot, persists the new state, and hands detected changes to
// the report stage.
package monitor

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/docwatch"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the fetch worker limit used when none is configured.
const DefaultConcurrency = 4

// Monitor orchestrates monitoring runs.
type Monitor struct {
	Sources docwatch.SourceService
	Feeds   docwatch.FeedFetcher
	Pages   docwatch.PageFetcher
	Store   docwatch.SnapshotStore

	// Runs, Reporter and RateLimiter are optional. A nil RunLog skips run
	// history, a nil Reporter skips report generation, a nil RateLimiter
	// fetches without pacing.
	Runs        docwatch.RunLog
	Reporter    docwatch.Reporter
	RateLimiter docwatch.DomainLimiter

	// Concurrency caps simultaneous fetches. Values below 1 use
	// DefaultConcurrency.
	Concurrency int

	Logger *slog.Logger

	// Now is overridable for testing. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a single run.
type Result struct {
	Snapshot *docwatch.Snapshot
	Changes  *docwatch.ChangeSet

	// Report is the generated digest, empty when no Reporter is configured.
	// When the Reporter fails, Report carries a plain-formatter digest
	// instead.
	Report string
}

// Run performs one complete monitoring pass.
//
// Sources are fetched concurrently up to the configured limit, and the
// snapshot is assembled only after every fetch has finished. A fetch
// failure never aborts the run; the failure is recorded in the source's
// record and surfaces through diffing semantics. Cancellation before
// persistence leaves the store untouched.
func (m *Monitor) Run(ctx context.Context) (*Result, error) {
	sources, err := m.Sources.FindSources(ctx)
	if err != nil {
		return nil, err
	}

	records, err := m.fetchAll(ctx, sources)
	if err != nil {
		return nil, err
	}

	snap := &docwatch.Snapshot{
		Timestamp: m.now().UTC(),
		Sources:   records,
	}

	prev, err := m.Store.LoadLatest(ctx)
	if err != nil {
		return nil, err
	}

	changes := docwatch.Diff(prev, snap)

	// A canceled run must not persist a partial snapshot.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := m.Store.SaveLatest(ctx, snap); err != nil {
		return nil, err
	}

	if changes.HasChanges {
		if err := m.Store.SaveVersion(ctx, snap, changes); err != nil {
			return nil, err
		}
	}

	if m.Runs != nil {
		if _, err := m.Runs.RecordRun(ctx, snap, changes); err != nil {
			m.logger().Warn("record run", slog.String("err", err.Error()))
		}
	}

	result := &Result{Snapshot: snap, Changes: changes}

	if m.Reporter != nil {
		report, err := m.Reporter.Generate(ctx, snap, changes)
		if err != nil {
			m.logger().Warn("generate report, falling back to plain digest", slog.String("err", err.Error()))
			report = plainReport(snap, changes)
		}
		result.Report = report
	}

	return result, nil
}

// plainReport assembles a digest from the plain formatters. Used when the
// configured Reporter fails, so a run asked to produce a report always does.
func plainReport(snap *docwatch.Snapshot, changes *docwatch.ChangeSet) string {
	return "# Documentation changes\n\n" +
		docwatch.FormatChangeSet(changes) + "\n\n" +
		docwatch.FormatSnapshot(snap)
}

// fetchAll fetches every source and returns records in source order.
func (m *Monitor) fetchAll(ctx context.Context, sources []*docwatch.Source) ([]docwatch.Record, error) {
	records := make([]docwatch.Record, len(sources))

	concurrency := m.Concurrency
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := m.waitForDomain(gctx, src.URL); err != nil {
				return err
			}
			records[i] = m.fetchOne(gctx, *src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (m *Monitor) fetchOne(ctx context.Context, src docwatch.Source) docwatch.Record {
	begin := time.Now()

	var record docwatch.Record
	switch src.Kind {
	case docwatch.KindPage:
		record = m.Pages.FetchPage(ctx, src)
	default:
		record = m.Feeds.FetchFeed(ctx, src)
	}

	m.logger().Info("fetched source",
		slog.String("source", src.ID),
		slog.String("kind", string(src.Kind)),
		slog.Duration("duration", time.Since(begin)),
	)
	return record
}

// waitForDomain applies per-domain rate limiting when configured.
func (m *Monitor) waitForDomain(ctx context.Context, rawURL string) error {
	if m.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return m.RateLimiter.Wait(ctx, u.Host)
}

func (m *Monitor) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Monitor) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
