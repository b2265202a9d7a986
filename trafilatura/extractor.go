// Package trafilatura provides a boilerplate-removal implementation of
// docwatch.Extractor. It is used as the fallback for pages whose markup the
// selector-based extractor does not recognize.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docwatch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docwatch.Extractor at compile time.
var _ docwatch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, docwatch.Errorf(docwatch.ENOTFOUND, "could not find main content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &docwatch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Headings:    headings(result.ContentNode),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headings walks the content tree collecting h1-h3 headings in document
// order, capped at docwatch.MaxHeadings.
func headings(root *html.Node) []docwatch.Heading {
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
				return // no nested headings inside a heading
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
