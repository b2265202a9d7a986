// Package htmltomarkdown converts extracted content HTML into the markdown
// text that page fingerprints and previews are computed from.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docwatch"
)

// Ensure Converter implements docwatch.Converter at compile time.
var _ docwatch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Conversion
// is deterministic, which the fingerprint contract depends on.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docwatch.Errorf(docwatch.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
