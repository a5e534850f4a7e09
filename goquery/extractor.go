package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipmd"
)

// Ensure Extractor implements clipmd.Extractor at compile time.
var _ clipmd.Extractor = (*Extractor)(nil)

// Extractor selects the content root with LocateContentRoot.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the outer HTML of the content root.
func (e *Extractor) Extract(rawHTML string) (*clipmd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipmd.Errorf(clipmd.EINVALID, "empty HTML input")
	}

	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, clipmd.Errorf(clipmd.EINVALID, "failed to parse HTML: %v", err)
	}

	root := goquery.NewDocumentFromNode(LocateContentRoot(doc)).Selection
	content, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, err
	}

	return &clipmd.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		ContentHTML: content,
	}, nil
}
