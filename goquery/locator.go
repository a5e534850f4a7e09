package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// fallbackSelectors are tried in order when a page has neither <article>
// nor <main>. The first selector matching anything wins.
var fallbackSelectors = []string{
	`[role="main"]`,
	".content",
	".article",
	".post",
	"#content",
	"#main",
}

// Parse parses an HTML page into a queryable document.
func Parse(rawHTML string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
}

// LocateContentRoot returns the element holding the page's main content.
//
// Priority order:
//   - the first <article>
//   - the first <main>
//   - the first match of [role="main"], .content, .article, .post,
//     #content, #main (first selector that matches anything)
//   - <body>
//
// Documents created by Parse always have a body, so the result is never nil.
func LocateContentRoot(doc *goquery.Document) *html.Node {
	if n := first(doc.Find("article")); n != nil {
		return n
	}
	if n := first(doc.Find("main")); n != nil {
		return n
	}
	for _, selector := range fallbackSelectors {
		if n := first(doc.Find(selector)); n != nil {
			return n
		}
	}
	if n := first(doc.Find("body")); n != nil {
		return n
	}
	return doc.Nodes[0]
}

func first(sel *goquery.Selection) *html.Node {
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}
