package mock

import "github.com/fwojciec/docwatch"

var _ docwatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docwatch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docwatch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docwatch.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docwatch.Converter = (*Converter)(nil)

// Converter is a mock implementation of docwatch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
