// Package dom is the read-only query layer over a page snapshot: selection
// scoped to the body, visibility, approximate geometry and proximity.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Attributes written by the browser snapshot provider. They carry geometry and
// computed visibility and are never treated as page content.
const (
	ReservedAttrPrefix = "data-ps-"
	BoxAttr            = "data-ps-box"
	HiddenAttr         = "data-ps-hidden"
)

// Document is an immutable snapshot of a rendered page together with its URL.
type Document struct {
	doc    *goquery.Document
	url    string
	body   *html.Node
	forms  []*html.Node
	ids    map[string]*html.Node
	layout *Layout
}

// Parse reads an HTML snapshot.
func Parse(r io.Reader, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return NewDocument(doc, pageURL), nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s, pageURL string) (*Document, error) {
	return Parse(strings.NewReader(s), pageURL)
}

// NewDocument indexes an already parsed goquery document. The document must not
// be modified afterwards.
func NewDocument(doc *goquery.Document, pageURL string) *Document {
	d := &Document{
		doc: doc,
		url: pageURL,
		ids: make(map[string]*html.Node),
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "body":
				if d.body == nil {
					d.body = n
				}
			case "form":
				d.forms = append(d.forms, n)
			}
			if id := attr(n, "id"); id != "" {
				if _, seen := d.ids[id]; !seen {
					d.ids[id] = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	d.layout = estimateLayout(d.body)
	return d
}

// URL returns the page URL the snapshot was taken from.
func (d *Document) URL() string { return d.url }

// ElementByID mirrors document.getElementById: the first element in tree order
// carrying the id.
func (d *Document) ElementByID(id string) (Element, bool) {
	n, ok := d.ids[id]
	if !ok {
		return Element{}, false
	}
	return d.wrap(n), true
}

// Forms returns every form element in the snapshot in tree order.
func (d *Document) Forms() []Element {
	out := make([]Element, 0, len(d.forms))
	for _, f := range d.forms {
		out = append(out, d.wrap(f))
	}
	return out
}

func (d *Document) wrap(n *html.Node) Element {
	return Element{node: n, doc: d}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
