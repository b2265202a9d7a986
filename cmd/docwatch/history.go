package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docwatch"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docwatch.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'docwatch run' to start one.")
		return nil
	}

	for _, r := range runs {
		status := "no changes"
		if r.HasChanges {
			status = fmt.Sprintf("%d feed, %d page", r.FeedChanges, r.PageChanges)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-20s  %s\n",
			r.StartedAt.UTC().Format(time.RFC3339), status, r.SnapshotHash)
	}

	return nil
}
