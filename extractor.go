package docwatch

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Headings are the h1-h3 headings found in the main content, in
	// document order, capped at MaxHeadings.
	Headings []Heading
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Page fingerprinting operates on text derived from this content, so an
// extractor must be deterministic for identical input.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns ENOTFOUND if no main content region can be identified.
	Extract(html string) (*ExtractResult, error)
}

// ExtractorChain tries each extractor in order and returns the first
// successful result. It allows a cheap selector-based extractor to be backed
// by a more aggressive fallback for pages with unconventional markup.
type ExtractorChain []Extractor

// Extract implements Extractor.
func (c ExtractorChain) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range c {
		result, err := e.Extract(html)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return nil, Errorf(EINTERNAL, "no extractors configured")
	}
	return nil, lastErr
}
