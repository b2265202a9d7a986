package mock

import (
	"context"

	"github.com/fwojciec/docwatch"
)

var _ docwatch.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of docwatch.Reporter.
type Reporter struct {
	GenerateFn func(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (string, error)
}

func (r *Reporter) Generate(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (string, error) {
	return r.GenerateFn(ctx, snap, changes)
}
