package http

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/fwojciec/docwatch"
)

// Ensure FeedService implements docwatch.FeedFetcher at compile time.
var _ docwatch.FeedFetcher = (*FeedService)(nil)

// FeedService fetches RSS and Atom feeds and normalizes them into docwatch
// records. Failures never cross the adapter boundary: a fetch or parse error
// yields a record with an empty entry list.
type FeedService struct {
	fetcher docwatch.Fetcher
}

// NewFeedService creates a new FeedService using the given fetcher.
func NewFeedService(fetcher docwatch.Fetcher) *FeedService {
	return &FeedService{fetcher: fetcher}
}

// FetchFeed retrieves and parses a feed source. The returned record retains
// at most docwatch.MaxFeedEntries of the latest entries, with summaries
// truncated to docwatch.MaxSummaryLen.
func (s *FeedService) FetchFeed(ctx context.Context, src docwatch.Source) docwatch.Record {
	rec := docwatch.Record{SourceID: src.ID, Kind: docwatch.KindFeed}

	body, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return rec
	}

	entries, err := ParseFeed(body)
	if err != nil {
		return rec
	}

	rec.Entries = entries
	return rec
}

// ParseFeed parses an RSS 2.0 or Atom document into normalized entries,
// applying the entry cap and summary truncation.
func ParseFeed(body string) ([]docwatch.Entry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, docwatch.Errorf(docwatch.EINVALID, "empty feed document")
	}

	var entries []docwatch.Entry
	switch root.Tag {
	case "rss":
		channel := root.SelectElement("channel")
		if channel == nil {
			return nil, docwatch.Errorf(docwatch.EINVALID, "rss document has no channel")
		}
		for _, item := range channel.SelectElements("item") {
			entries = append(entries, parseRSSItem(item))
		}
	case "feed":
		for _, entry := range root.SelectElements("entry") {
			entries = append(entries, parseAtomEntry(entry))
		}
	default:
		return nil, docwatch.Errorf(docwatch.EINVALID, "unsupported feed root element %q", root.Tag)
	}

	if len(entries) > docwatch.MaxFeedEntries {
		entries = entries[:docwatch.MaxFeedEntries]
	}
	return entries, nil
}

func parseRSSItem(item *etree.Element) docwatch.Entry {
	return docwatch.Entry{
		Title:     elementText(item, "title"),
		Link:      elementText(item, "link"),
		Published: elementText(item, "pubDate"),
		Summary:   truncate(elementText(item, "description"), docwatch.MaxSummaryLen),
	}
}

func parseAtomEntry(entry *etree.Element) docwatch.Entry {
	summary := elementText(entry, "summary")
	if summary == "" {
		summary = elementText(entry, "content")
	}

	published := elementText(entry, "published")
	if published == "" {
		published = elementText(entry, "updated")
	}

	return docwatch.Entry{
		Title:     elementText(entry, "title"),
		Link:      atomLink(entry),
		Published: published,
		Summary:   truncate(summary, docwatch.MaxSummaryLen),
	}
}

// atomLink returns the entry's alternate link href, falling back to the
// first link element when no rel="alternate" is present.
func atomLink(entry *etree.Element) string {
	links := entry.SelectElements("link")
	for _, link := range links {
		if link.SelectAttrValue("rel", "alternate") == "alternate" {
			return link.SelectAttrValue("href", "")
		}
	}
	if len(links) > 0 {
		return links[0].SelectAttrValue("href", "")
	}
	return ""
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
