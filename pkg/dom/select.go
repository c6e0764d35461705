package dom

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var selectorCache sync.Map // string -> cascadia.Selector

// compileSelector compiles and memoises a CSS selector. Selectors are program
// constants, so an invalid one is a programming error and panics.
func compileSelector(selector string) cascadia.Selector {
	if s, ok := selectorCache.Load(selector); ok {
		return s.(cascadia.Selector)
	}
	s, err := cascadia.Compile(selector)
	if err != nil {
		panic(fmt.Sprintf("dom: invalid selector %q: %v", selector, err))
	}
	selectorCache.Store(selector, s)
	return s
}

// SelectByTag returns the descendants of the body matching selector, in tree
// order, leaving out anything inside a footer.
func (d *Document) SelectByTag(selector string) []Element {
	if d.body == nil {
		return nil
	}
	return d.selectUnder(d.body, selector)
}

// SelectVisibleByTag is SelectByTag filtered to visible elements.
func (d *Document) SelectVisibleByTag(selector string) []Element {
	return FilterVisible(d.SelectByTag(selector))
}

// SelectWithin applies the body-scoped, footer-excluding selection below e.
func (e Element) SelectWithin(selector string) []Element {
	if !e.Valid() {
		return nil
	}
	if e.doc.body == nil || !e.doc.wrap(e.doc.body).Contains(e) {
		return nil
	}
	return e.doc.selectUnder(e.node, selector)
}

func (d *Document) selectUnder(root *html.Node, selector string) []Element {
	sel := compileSelector(selector)
	var out []Element
	for _, n := range sel.MatchAll(root) {
		if n == root || inFooter(n) {
			continue
		}
		out = append(out, d.wrap(n))
	}
	return out
}

func inFooter(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "footer" {
			return true
		}
	}
	return false
}

// FilterVisible keeps the visible elements, preserving order.
func FilterVisible(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// InForm reports whether any form of the document contains the element.
// Traversal faults count as "not in a form".
func (e Element) InForm() (in bool) {
	defer func() {
		if recover() != nil {
			in = false
		}
	}()
	if !e.Valid() {
		return false
	}
	for _, f := range e.doc.forms {
		if e.doc.wrap(f).Contains(e) {
			return true
		}
	}
	return false
}
