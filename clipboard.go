package clipmd

// Clipboard places text on the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
