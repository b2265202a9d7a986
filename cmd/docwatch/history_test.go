package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docwatch"
	main "github.com/fwojciec/docwatch/cmd/docwatch"
	"github.com/fwojciec/docwatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows recent runs", func(t *testing.T) {
		t.Parallel()

		gotLimit := 0
		runs := &mock.RunLog{
			FindRunsFn: func(ctx context.Context, limit int) ([]*docwatch.Run, error) {
				gotLimit = limit
				return []*docwatch.Run{
					{
						ID:           "run-2",
						StartedAt:    time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
						HasChanges:   true,
						FeedChanges:  1,
						PageChanges:  2,
						SnapshotHash: "deadbeef01234567",
					},
					{
						ID:           "run-1",
						StartedAt:    time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
						SnapshotHash: "deadbeef01234567",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.HistoryCmd{Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 10, gotLimit)

		output := stdout.String()
		assert.Contains(t, output, "2026-08-26T10:00:00Z")
		assert.Contains(t, output, "1 feed, 2 page")
		assert.Contains(t, output, "no changes")
		assert.Contains(t, output, "deadbeef01234567")
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunLog{
			FindRunsFn: func(ctx context.Context, limit int) ([]*docwatch.Run, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.HistoryCmd{Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded")
	})
}
