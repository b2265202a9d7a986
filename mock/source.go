package mock

import (
	"context"

	"github.com/fwojciec/docwatch"
)

var _ docwatch.FeedFetcher = (*FeedFetcher)(nil)

// FeedFetcher is a mock implementation of docwatch.FeedFetcher.
type FeedFetcher struct {
	FetchFeedFn func(ctx context.Context, src docwatch.Source) docwatch.Record
}

func (f *FeedFetcher) FetchFeed(ctx context.Context, src docwatch.Source) docwatch.Record {
	return f.FetchFeedFn(ctx, src)
}

var _ docwatch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of docwatch.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, src docwatch.Source) docwatch.Record
}

func (f *PageFetcher) FetchPage(ctx context.Context, src docwatch.Source) docwatch.Record {
	return f.FetchPageFn(ctx, src)
}

var _ docwatch.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of docwatch.SourceService.
type SourceService struct {
	CreateSourceFn   func(ctx context.Context, src *docwatch.Source) error
	FindSourceByIDFn func(ctx context.Context, id string) (*docwatch.Source, error)
	FindSourcesFn    func(ctx context.Context) ([]*docwatch.Source, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (s *SourceService) CreateSource(ctx context.Context, src *docwatch.Source) error {
	return s.CreateSourceFn(ctx, src)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*docwatch.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context) ([]*docwatch.Source, error) {
	return s.FindSourcesFn(ctx)
}

func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	return s.DeleteSourceFn(ctx, id)
}
