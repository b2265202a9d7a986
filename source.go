package docwatch

import (
	"context"
	"time"
)

// Kind identifies what a monitored source is and how it is fetched.
type Kind string

// Source kinds.
const (
	KindFeed Kind = "feed"
	KindPage Kind = "page"
)

// Limits applied while normalizing fetched content into records.
// They bound the size of persisted snapshots, not the fetch itself.
const (
	// MaxFeedEntries is how many of the latest feed entries are retained.
	MaxFeedEntries = 5

	// MaxSummaryLen caps the length of a feed entry summary in bytes.
	MaxSummaryLen = 500

	// MaxHeadings caps how many page headings are retained.
	MaxHeadings = 10

	// MaxPreviewLen caps the page text preview in bytes.
	MaxPreviewLen = 1000
)

// Source identifies a monitored external document. The ID is the stable key
// used to correlate records across runs; renaming a URL without changing the
// ID is invisible to change detection.
type Source struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source ID required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if s.Kind != KindFeed && s.Kind != KindPage {
		return Errorf(EINVALID, "unknown source kind %q", s.Kind)
	}
	return nil
}

// Entry is a single feed entry in the normalized record shape.
// Published is carried verbatim from the source and never parsed.
type Entry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

// HeadingLevel enumerates the heading depths retained from a page.
type HeadingLevel string

// Heading levels.
const (
	H1 HeadingLevel = "h1"
	H2 HeadingLevel = "h2"
	H3 HeadingLevel = "h3"
)

// Heading is one structural heading extracted from a page's main content.
type Heading struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
}

// PageContent holds the observed state of a page source. A page record is
// either fully populated (hash, headings, preview) or in error state (Err
// set, everything else empty). A record without a content hash carries no
// change signal and is skipped by the differ.
type PageContent struct {
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetchedAt"`
	ContentHash string    `json:"contentHash,omitempty"`
	Headings    []Heading `json:"headings,omitempty"`
	TextPreview string    `json:"textPreview,omitempty"`
	Err         string    `json:"error,omitempty"`
}

// Failed reports whether the page is in error state.
func (p *PageContent) Failed() bool {
	return p.Err != ""
}

// Record is the normalized shape every fetched source is coerced into,
// regardless of origin kind. Entries is set for feeds, Page for pages.
type Record struct {
	SourceID string       `json:"sourceId"`
	Kind     Kind         `json:"kind"`
	Entries  []Entry      `json:"entries,omitempty"`
	Page     *PageContent `json:"page,omitempty"`
}

// Validate returns an error if the record violates the tagged-union shape.
func (r *Record) Validate() error {
	if r.SourceID == "" {
		return Errorf(EINVALID, "record source ID required")
	}
	switch r.Kind {
	case KindFeed:
		if r.Page != nil {
			return Errorf(EINVALID, "feed record %q must not carry page content", r.SourceID)
		}
	case KindPage:
		if r.Page == nil {
			return Errorf(EINVALID, "page record %q missing page content", r.SourceID)
		}
		if len(r.Entries) > 0 {
			return Errorf(EINVALID, "page record %q must not carry feed entries", r.SourceID)
		}
		if r.Page.Err != "" && r.Page.ContentHash != "" {
			return Errorf(EINVALID, "page record %q cannot be both populated and failed", r.SourceID)
		}
		if r.Page.Err == "" && r.Page.ContentHash == "" {
			return Errorf(EINVALID, "page record %q has neither content hash nor error", r.SourceID)
		}
	default:
		return Errorf(EINVALID, "unknown record kind %q", r.Kind)
	}
	return nil
}

// SourceService manages the registry of monitored sources.
type SourceService interface {
	// CreateSource registers a new source.
	// Returns EINVALID if a source with the same ID already exists.
	CreateSource(ctx context.Context, src *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if the source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves all registered sources in registration order.
	FindSources(ctx context.Context) ([]*Source, error)

	// DeleteSource permanently removes a source.
	// Returns ENOTFOUND if the source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// FeedFetcher turns a live feed source into a Record. Implementations must
// never let a failure cross this boundary: a fetch or parse error yields a
// record with an empty entry list.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, src Source) Record
}

// PageFetcher turns a live page source into a Record. Implementations must
// never let a failure cross this boundary: a fetch or extraction error
// yields a record in error state.
type PageFetcher interface {
	FetchPage(ctx context.Context, src Source) Record
}
