package docwatch

import (
	"fmt"
	"sort"
	"strings"
)

// FormatChangeSet renders a change-set as markdown for display or as LLM
// context. Sources are listed in sorted order so the output is deterministic
// for a given change-set.
func FormatChangeSet(changes *ChangeSet) string {
	if changes == nil || !changes.HasChanges {
		return "No changes detected since the last run."
	}

	var b strings.Builder

	if len(changes.FeedChanges) > 0 {
		b.WriteString("## Feed updates\n\n")
		for _, id := range sortedKeys(changes.FeedChanges) {
			change := changes.FeedChanges[id]
			switch change.Status {
			case FeedStatusNewSource:
				fmt.Fprintf(&b, "- **%s**: newly monitored, %d entries\n", id, change.EntryCount)
			case FeedStatusUpdatedEntries:
				fmt.Fprintf(&b, "- **%s**: %d new entries\n", id, len(change.NewTitles))
				for _, title := range change.NewTitles {
					fmt.Fprintf(&b, "  - %s\n", title)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(changes.PageChanges) > 0 {
		b.WriteString("## Page updates\n\n")
		for _, id := range sortedKeys(changes.PageChanges) {
			change := changes.PageChanges[id]
			fmt.Fprintf(&b, "- **%s**: content changed (%s)\n", id, change.URL)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatSnapshot renders the per-source status of a snapshot as markdown.
// It is used for the "stable" report when a run detected no changes.
func FormatSnapshot(snap *Snapshot) string {
	if snap == nil || snap.Empty() {
		return "No sources observed.\n"
	}

	var b strings.Builder
	b.WriteString("## Monitored sources\n\n")

	for i := range snap.Sources {
		rec := &snap.Sources[i]
		switch rec.Kind {
		case KindFeed:
			if len(rec.Entries) == 0 {
				fmt.Fprintf(&b, "- **%s**: no entries\n", rec.SourceID)
				continue
			}
			latest := rec.Entries[0]
			fmt.Fprintf(&b, "- **%s**: latest entry %q (%s)\n", rec.SourceID, latest.Title, latest.Published)
		case KindPage:
			if rec.Page == nil {
				continue
			}
			if rec.Page.Failed() {
				fmt.Fprintf(&b, "- **%s**: error (%s)\n", rec.SourceID, rec.Page.Err)
			} else {
				fmt.Fprintf(&b, "- **%s**: fetched OK\n", rec.SourceID)
			}
		}
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
