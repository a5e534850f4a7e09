// Package goquery implements content location and HTML-to-Markdown
// conversion on top of goquery and golang.org/x/net/html.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipmd"
	"golang.org/x/net/html"
)

// Ensure Converter implements clipmd.Converter at compile time.
var _ clipmd.Converter = (*Converter)(nil)

// Converter renders the main content of an HTML page as Markdown.
type Converter struct {
	locate bool
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithoutLocator renders the whole body instead of the located content root.
// Use it when the input is already the article, e.g. extractor output.
func WithoutLocator() ConverterOption {
	return func(c *Converter) {
		c.locate = false
	}
}

// NewConverter creates a new Converter that locates the content root.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{locate: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses rawHTML and renders its content root as Markdown.
// An empty page renders to the empty string.
func (c *Converter) Convert(rawHTML string) (string, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return "", clipmd.Errorf(clipmd.EINVALID, "failed to parse HTML: %v", err)
	}

	return Render(c.root(doc)), nil
}

func (c *Converter) root(doc *goquery.Document) *html.Node {
	if !c.locate {
		if n := first(doc.Find("body")); n != nil {
			return n
		}
		return doc.Nodes[0]
	}
	return LocateContentRoot(doc)
}

// ExtractContent locates and renders the content of doc, converting any
// failure into a failure Response.
func ExtractContent(doc *goquery.Document) clipmd.Response {
	return clipmd.Respond(func() (string, error) {
		return Render(LocateContentRoot(doc)), nil
	})
}
