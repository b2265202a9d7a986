package http

import (
	"context"
	"time"

	"github.com/fwojciec/docwatch"
)

// Ensure PageService implements docwatch.PageFetcher at compile time.
var _ docwatch.PageFetcher = (*PageService)(nil)

// PageService fetches web pages and normalizes them into docwatch records.
// It runs the fetch → extract → convert pipeline: the extractor isolates the
// main content, the converter turns it into markdown text, and the text is
// fingerprinted for change detection. Failures never cross the adapter
// boundary: any step failing yields a record in error state.
type PageService struct {
	fetcher   docwatch.Fetcher
	extractor docwatch.Extractor
	converter docwatch.Converter
	now       func() time.Time
}

// NewPageService creates a new PageService from the pipeline dependencies.
func NewPageService(fetcher docwatch.Fetcher, extractor docwatch.Extractor, converter docwatch.Converter) *PageService {
	return &PageService{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		now:       time.Now,
	}
}

// FetchPage retrieves and processes a page source.
func (s *PageService) FetchPage(ctx context.Context, src docwatch.Source) docwatch.Record {
	page := &docwatch.PageContent{
		URL:       src.URL,
		FetchedAt: s.now().UTC(),
	}
	rec := docwatch.Record{SourceID: src.ID, Kind: docwatch.KindPage, Page: page}

	html, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		page.Err = err.Error()
		return rec
	}

	extracted, err := s.extractor.Extract(html)
	if err != nil {
		page.Err = err.Error()
		return rec
	}

	text, err := s.converter.Convert(extracted.ContentHTML)
	if err != nil {
		page.Err = err.Error()
		return rec
	}

	page.ContentHash = docwatch.Fingerprint(text)
	page.Headings = extracted.Headings
	page.TextPreview = truncate(text, docwatch.MaxPreviewLen)
	return rec
}
