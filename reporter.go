package docwatch

import "context"

// Reporter turns a run's snapshot and change-set into a human-readable
// markdown report. Implementations must handle a change-set with no changes
// by producing a "stable" status report rather than failing.
type Reporter interface {
	Generate(ctx context.Context, snap *Snapshot, changes *ChangeSet) (string, error)
}
