package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is one element node of a Document. The zero value is a detached,
// empty element for which every query answers negatively.
type Element struct {
	node *html.Node
	doc  *Document
}

// Valid reports whether the element refers to a node.
func (e Element) Valid() bool { return e.node != nil && e.doc != nil }

// Node returns the underlying html node.
func (e Element) Node() *html.Node { return e.node }

// Tag returns the lower-case tag name.
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// Attr returns the value of an attribute and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	if e.node == nil {
		return "", false
	}
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValue returns an attribute value, or "" when absent.
func (e Element) AttrValue(name string) string {
	v, _ := e.Attr(name)
	return v
}

// ID returns the id attribute.
func (e Element) ID() string { return e.AttrValue("id") }

// ClassName returns the raw class attribute.
func (e Element) ClassName() string { return e.AttrValue("class") }

// AttrValues returns every non-empty attribute value in source order, skipping
// the snapshot provider's reserved attributes.
func (e Element) AttrValues() []string {
	if e.node == nil {
		return nil
	}
	values := make([]string, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		if a.Val == "" || strings.HasPrefix(a.Key, ReservedAttrPrefix) {
			continue
		}
		values = append(values, a.Val)
	}
	return values
}

// Text returns the concatenated text of every descendant text node, like the
// DOM textContent property.
func (e Element) Text() string {
	if e.node == nil {
		return ""
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// Parent returns the parent element.
func (e Element) Parent() (Element, bool) {
	if e.node == nil {
		return Element{}, false
	}
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return Element{}, false
	}
	return e.doc.wrap(p), true
}

// PrevSibling returns the previous element sibling.
func (e Element) PrevSibling() (Element, bool) {
	if e.node == nil {
		return Element{}, false
	}
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return e.doc.wrap(s), true
		}
	}
	return Element{}, false
}

// NextSibling returns the next element sibling.
func (e Element) NextSibling() (Element, bool) {
	if e.node == nil {
		return Element{}, false
	}
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return e.doc.wrap(s), true
		}
	}
	return Element{}, false
}

// Contains reports whether other is e or one of its descendants.
func (e Element) Contains(other Element) bool {
	if e.node == nil || other.node == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// inputTypes are the type keywords an input accepts; anything else behaves as text.
var inputTypes = map[string]bool{
	"button": true, "checkbox": true, "color": true, "date": true,
	"datetime-local": true, "email": true, "file": true, "hidden": true,
	"image": true, "month": true, "number": true, "password": true,
	"radio": true, "range": true, "reset": true, "search": true,
	"submit": true, "tel": true, "text": true, "time": true,
	"url": true, "week": true,
}

// InputType returns the normalised type of an input element, with missing or
// unknown types reported as "text". It is false for non-input elements.
func (e Element) InputType() (string, bool) {
	if e.Tag() != "input" {
		return "", false
	}
	t := strings.ToLower(strings.TrimSpace(e.AttrValue("type")))
	if !inputTypes[t] {
		return "text", true
	}
	return t, true
}

// Autocomplete returns the autocomplete hint for form controls that expose one.
func (e Element) Autocomplete() (string, bool) {
	switch e.Tag() {
	case "input", "select", "textarea", "form":
	default:
		return "", false
	}
	v, ok := e.Attr("autocomplete")
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(v)), true
}

func (e Element) labelable() bool {
	switch e.Tag() {
	case "button", "meter", "output", "progress", "select", "textarea":
		return true
	case "input":
		t, _ := e.InputType()
		return t != "hidden"
	}
	return false
}

// Labels returns the label elements associated with a labelable control, in
// tree order: labels whose for attribute names the control's id, and an
// enclosing label without a for attribute. ok is false for elements that cannot
// carry labels.
func (e Element) Labels() (labels []Element, ok bool) {
	if !e.Valid() || !e.labelable() {
		return nil, false
	}
	id := e.ID()
	for _, n := range e.doc.doc.Find("label").Nodes {
		label := e.doc.wrap(n)
		if forID, has := label.Attr("for"); has {
			if id != "" && forID == id {
				labels = append(labels, label)
			}
			continue
		}
		if label.Contains(e) && label.firstLabelable() == e.node {
			labels = append(labels, label)
		}
	}
	return labels, true
}

// firstLabelable returns the first labelable descendant of a label, which is
// the control an implicit label applies to.
func (e Element) firstLabelable() *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if e.doc.wrap(c).labelable() {
					found = c
					return
				}
				walk(c)
			}
		}
	}
	walk(e.node)
	return found
}

// Form returns the form owner of a form-associated element: the form named by
// its form attribute, else the nearest ancestor form.
func (e Element) Form() (Element, bool) {
	switch e.Tag() {
	case "input", "button", "select", "textarea", "fieldset", "output", "object":
	default:
		return Element{}, false
	}
	if id, ok := e.Attr("form"); ok {
		f, found := e.doc.ElementByID(id)
		if found && f.Tag() == "form" {
			return f, true
		}
		return Element{}, false
	}
	for n := e.node.Parent; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && n.Data == "form" {
			return e.doc.wrap(n), true
		}
	}
	return Element{}, false
}

// Document returns the snapshot the element belongs to.
func (e Element) Document() *Document { return e.doc }
