package dom

import (
	"golang.org/x/net/html"
)

// neverRendered are elements whose content is never laid out.
var neverRendered = map[string]bool{
	"head": true, "script": true, "style": true, "template": true,
	"noscript": true, "title": true, "meta": true, "link": true,
}

// Visible reports whether the element would be rendered. An element is
// invisible when it or an ancestor is suppressed by the hidden attribute, a
// hidden input type, inline display/visibility/opacity, the snapshot
// provider's computed-style flag, a zero size (explicit or captured), or a
// closed details element.
func (e Element) Visible() bool {
	if !e.Valid() {
		return false
	}

	visibilityDecided := false
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if neverRendered[n.Data] {
			return false
		}
		if hasAttr(n, "hidden") || hasAttr(n, HiddenAttr) {
			return false
		}
		el := e.doc.wrap(n)
		if n.Data == "input" && el.isHiddenInput() {
			return false
		}
		if box, ok := el.capturedBox(); ok && (box.W <= 0 || box.H <= 0) {
			return false
		}

		style := inlineStyle(n)
		if style["display"] == "none" {
			return false
		}
		if v, ok := style["opacity"]; ok {
			if f, known := parseLength(v); known && f == 0 {
				return false
			}
		}
		// visibility inherits, but a descendant may switch it back on.
		if v, ok := style["visibility"]; ok && !visibilityDecided {
			if v == "hidden" || v == "collapse" {
				return false
			}
			visibilityDecided = true
		}

		w, h := explicitSize(n)
		if w == 0 || h == 0 {
			return false
		}

		if n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.Data == "details" {
			if !hasAttr(n.Parent, "open") && !(n.Data == "summary" && isFirstSummary(n)) {
				return false
			}
		}
	}
	return true
}

func (e Element) isHiddenInput() bool {
	t, _ := e.InputType()
	return t == "hidden"
}

func isFirstSummary(n *html.Node) bool {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && s.Data == "summary" {
			return false
		}
	}
	return true
}
