package clipmd

import "strings"

// FormatPages joins pages into the text placed on the clipboard.
// A single page is returned unmodified. Several pages are each headed by
// their title, or source when untitled, and separated by blank lines.
func FormatPages(pages []*Page) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return pages[0].Content
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		header := page.Title
		if header == "" {
			header = page.Source
		}
		parts = append(parts, "## "+header+"\n"+page.Content)
	}

	return strings.Join(parts, "\n\n")
}
