package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// List markers accepted by RenderList.
// OrderedMarker is replaced by each item's 1-based position.
const (
	UnorderedMarker = "-"
	OrderedMarker   = "1."
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// Render converts the children of n to Markdown.
//
// Text nodes contribute their trimmed text and elements are rendered with
// RenderElement, in document order. The result has runs of three or more
// newlines collapsed to a blank line and is trimmed. A nil node renders to
// the empty string.
func Render(n *html.Node) string {
	if n == nil {
		return ""
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(c.Data))
		case html.ElementNode:
			b.WriteString(RenderElement(c))
		}
	}

	return Normalize(b.String())
}

// Normalize collapses runs of three or more newlines to exactly two and
// trims surrounding whitespace. Normalize is idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(blankLines.ReplaceAllString(s, "\n\n"))
}

// RenderElement converts a single element to Markdown.
//
// Images are rendered from their attributes alone. Any other element whose
// trimmed text content is empty renders to the empty string; otherwise the
// tag decides the markup and unknown tags are transparent containers.
func RenderElement(n *html.Node) string {
	tag := strings.ToLower(n.Data)

	if tag == "img" {
		src := attr(n, "src")
		if src == "" {
			return ""
		}
		return "![" + attr(n, "alt") + "](" + src + ")"
	}

	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return ""
	}

	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		return "\n\n" + strings.Repeat("#", level) + " " + text + "\n\n"
	case "p":
		return "\n\n" + Render(n) + "\n\n"
	case "br":
		return "\n"
	case "strong", "b":
		return "**" + text + "**"
	case "em", "i":
		return "*" + text + "*"
	case "code":
		return "`" + text + "`"
	case "pre":
		code := text
		if sel := selection(n).Find("code").First(); sel.Length() > 0 {
			code = sel.Text()
		}
		return "\n\n```\n" + code + "\n```\n\n"
	case "blockquote":
		return "\n\n> " + strings.ReplaceAll(Render(n), "\n", "\n> ") + "\n\n"
	case "a":
		if href := attr(n, "href"); href != "" {
			return "[" + text + "](" + href + ")"
		}
		return text
	case "ul":
		return "\n\n" + RenderList(n, UnorderedMarker) + "\n\n"
	case "ol":
		return "\n\n" + RenderList(n, OrderedMarker) + "\n\n"
	default:
		return Render(n)
	}
}

// RenderList renders every <li> below list, at any depth, as one line
// prefixed with marker. Lines are joined with a newline.
//
// Items of a nested list appear twice: inside the line of the item that
// contains them and again as lines of their own.
func RenderList(list *html.Node, marker string) string {
	items := selection(list).Find("li")
	lines := make([]string, 0, items.Length())

	items.Each(func(i int, item *goquery.Selection) {
		m := marker
		if marker == OrderedMarker {
			m = strconv.Itoa(i+1) + "."
		}
		lines = append(lines, m+" "+Render(item.Nodes[0]))
	})

	return strings.Join(lines, "\n")
}

// selection wraps n so it can be queried with CSS selectors.
func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// textContent returns the concatenated text of all descendant text nodes.
func textContent(n *html.Node) string {
	return selection(n).Text()
}

// attr returns the value of the named attribute, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
