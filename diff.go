package docwatch

import "sort"

// Diff compares the previous snapshot against the current one and returns
// the change-set. It is a pure function: for fixed inputs the output is
// identical across runs.
//
// Diffing is keyed by the sources present in the current snapshot; sources
// that disappeared between runs are not reported. For feeds the signal is
// the set difference of entry titles (added titles only — removals and
// in-place edits are out of scope). For pages the signal is the content
// fingerprint, with a missing previous fingerprint treated as empty: a page
// observed with a fingerprint for the first time is reported as updated,
// while a page whose fingerprint is absent on both sides is not. A current
// page in error state carries no fingerprint and is never reported.
func Diff(prev, curr *Snapshot) *ChangeSet {
	changes := NewChangeSet()

	for i := range curr.Sources {
		rec := &curr.Sources[i]
		switch rec.Kind {
		case KindFeed:
			if change, ok := diffFeed(prev.Lookup(rec.SourceID), rec); ok {
				changes.FeedChanges[rec.SourceID] = change
			}
		case KindPage:
			if change, ok := diffPage(prev.Lookup(rec.SourceID), rec); ok {
				changes.PageChanges[rec.SourceID] = change
			}
		}
	}

	changes.HasChanges = len(changes.FeedChanges) > 0 || len(changes.PageChanges) > 0
	return changes
}

func diffFeed(prev, curr *Record) (FeedChange, bool) {
	if prev == nil {
		return FeedChange{
			Status:     FeedStatusNewSource,
			EntryCount: len(curr.Entries),
		}, true
	}

	seen := make(map[string]bool, len(prev.Entries))
	for _, e := range prev.Entries {
		seen[e.Title] = true
	}

	var added []string
	dup := make(map[string]bool, len(curr.Entries))
	for _, e := range curr.Entries {
		if seen[e.Title] || dup[e.Title] {
			continue
		}
		dup[e.Title] = true
		added = append(added, e.Title)
	}
	if len(added) == 0 {
		return FeedChange{}, false
	}

	// Membership, not order, is the signal; sort for stable output.
	sort.Strings(added)

	return FeedChange{
		Status:    FeedStatusUpdatedEntries,
		NewTitles: added,
	}, true
}

func diffPage(prev, curr *Record) (PageChange, bool) {
	if curr.Page == nil || curr.Page.ContentHash == "" {
		// No current fingerprint means "unknown", not "changed".
		return PageChange{}, false
	}

	var prevHash string
	if prev != nil && prev.Page != nil {
		prevHash = prev.Page.ContentHash
	}
	if prevHash == curr.Page.ContentHash {
		return PageChange{}, false
	}

	return PageChange{
		Status: PageStatusUpdated,
		URL:    curr.Page.URL,
	}, true
}
