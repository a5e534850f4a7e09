package clipmd

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been left behind.
	ContentHTML string
}

// Extractor selects the main content of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
