package clipmd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is either a full page or clean HTML from an Extractor.
	Convert(html string) (string, error)
}
