// Package goquery provides a CSS-selector based implementation of
// docwatch.Extractor for documentation pages with conventional markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docwatch"
)

// contentSelectors are tried in order; the first match wins. Documentation
// sites overwhelmingly mark their main content with one of these.
var contentSelectors = []string{"article", "main", "div.content"}

// Ensure Extractor implements docwatch.Extractor at compile time.
var _ docwatch.Extractor = (*Extractor)(nil)

// Extractor locates the main content region of a page using CSS selectors.
// Pages whose markup matches none of the known selectors yield ENOTFOUND;
// callers may chain a more aggressive fallback extractor for those.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with its headings.
func (e *Extractor) Extract(html string) (*docwatch.ExtractResult, error) {
	if html == "" {
		return nil, docwatch.Errorf(docwatch.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docwatch.Errorf(docwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		return nil, docwatch.Errorf(docwatch.ENOTFOUND, "could not find main content")
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &docwatch.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		ContentHTML: contentHTML,
		Headings:    headings(content),
	}, nil
}

// headings collects h1-h3 headings from the content in document order,
// capped at docwatch.MaxHeadings.
func headings(content *goquery.Selection) []docwatch.Heading {
	var result []docwatch.Heading
	content.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(result) >= docwatch.MaxHeadings {
			return false
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		result = append(result, docwatch.Heading{
			Level: docwatch.HeadingLevel(goquery.NodeName(sel)),
			Text:  text,
		})
		return true
	})
	return result
}
