// Package readability provides a Mozilla-readability-style implementation of
// docwatch.Extractor for article-like documentation pages.
package readability

import (
	"strings"

	"github.com/fwojciec/docwatch"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docwatch.Extractor at compile time.
var _ docwatch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with its headings.
func (e *Extractor) Extract(rawHTML string) (*docwatch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docwatch.Errorf(docwatch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, docwatch.Errorf(docwatch.ENOTFOUND, "could not find main content")
	}

	return &docwatch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Headings:    headings(article.Content),
	}, nil
}

// headings collects h1-h3 headings from the extracted content in document
// order, capped at docwatch.MaxHeadings.
func headings(contentHTML string) []docwatch.Heading {
	root, err := html.Parse(strings.NewReader(contentHTML))
	if err != nil {
		return nil
	}

	var result []docwatch.Heading

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(result) >= docwatch.MaxHeadings {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3":
				if text := strings.TrimSpace(nodeText(n)); text != "" {
					result = append(result, docwatch.Heading{
						Level: docwatch.HeadingLevel(n.Data),
						Text:  text,
					})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return result
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
