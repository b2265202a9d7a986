package docwatch

// Feed change statuses.
const (
	// FeedStatusNewSource marks a feed that has no prior record at all.
	FeedStatusNewSource = "new_source"

	// FeedStatusUpdatedEntries marks a feed with newly-seen entry titles.
	FeedStatusUpdatedEntries = "updated_entries"
)

// PageStatusUpdated marks a page whose content fingerprint changed.
const PageStatusUpdated = "updated"

// FeedChange describes the delta for a single feed source. For a new source
// EntryCount holds the number of current entries; for an updated source
// NewTitles holds the newly-seen titles, sorted for deterministic output.
type FeedChange struct {
	Status     string   `json:"status"`
	EntryCount int      `json:"entryCount,omitempty"`
	NewTitles  []string `json:"newTitles,omitempty"`
}

// PageChange describes the delta for a single page source.
type PageChange struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// ChangeSet is the structured diff between two snapshots. It is computed
// once per run and persisted only bundled with the snapshot that produced
// it, and only when HasChanges is true.
//
// Invariant: HasChanges is true iff FeedChanges or PageChanges is non-empty.
type ChangeSet struct {
	HasChanges  bool                  `json:"hasChanges"`
	FeedChanges map[string]FeedChange `json:"feedChanges"`
	PageChanges map[string]PageChange `json:"pageChanges"`
}

// NewChangeSet returns an empty change-set with initialized maps.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		FeedChanges: make(map[string]FeedChange),
		PageChanges: make(map[string]PageChange),
	}
}
