package dom

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Flow-layout constants used when the snapshot carries no captured geometry.
const (
	ViewportWidth = 1280.0
	lineHeight    = 20.0
	charWidth     = 8.0
	controlHeight = 32.0
	controlWidth  = 200.0
	buttonPadding = 32.0
)

// Rect is an on-screen box in CSS pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout holds the estimated box of every element below the body.
type Layout struct {
	boxes map[*html.Node]Rect
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "details": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"legend": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "summary": true, "table": true,
	"tbody": true, "thead": true, "tfoot": true, "tr": true, "ul": true,
	"body": true,
}

var replacedTags = map[string]bool{
	"input": true, "button": true, "select": true, "textarea": true,
	"img": true, "iframe": true, "svg": true, "video": true, "canvas": true,
}

// estimateLayout lays the body out as a single column of block rows with
// inline content flowing left to right and wrapping at the viewport width.
// It is a deterministic approximation, not a rendering.
func estimateLayout(body *html.Node) *Layout {
	f := &flow{boxes: make(map[*html.Node]Rect)}
	if body != nil {
		f.visit(body)
	}
	return &Layout{boxes: f.boxes}
}

type flow struct {
	boxes map[*html.Node]Rect
	x, y  float64
	rowH  float64
}

func (f *flow) newline() {
	if f.x > 0 {
		f.y += f.rowH
		f.x = 0
		f.rowH = 0
	}
}

func (f *flow) place(w, h float64) (float64, float64) {
	if f.x > 0 && f.x+w > ViewportWidth {
		f.newline()
	}
	x, y := f.x, f.y
	f.x += w
	if h > f.rowH {
		f.rowH = h
	}
	return x, y
}

func (f *flow) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.visit(c)
	}
}

func (f *flow) visit(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		f.text(n.Data)
		return
	case html.ElementNode:
	default:
		f.children(n)
		return
	}

	tag := n.Data
	if neverRendered[tag] || inlineStyle(n)["display"] == "none" || hasAttr(n, "hidden") {
		f.boxes[n] = Rect{X: f.x, Y: f.y}
		return
	}

	switch {
	case tag == "br":
		if f.x == 0 {
			f.y += lineHeight
		}
		f.newline()
	case replacedTags[tag]:
		w, h := controlSize(n)
		x, y := f.place(w, h)
		f.boxes[n] = Rect{X: x, Y: y, W: w, H: h}
	case blockTags[tag]:
		f.newline()
		startY := f.y
		f.children(n)
		f.newline()
		f.boxes[n] = Rect{X: 0, Y: startY, W: ViewportWidth, H: f.y - startY}
	default:
		startX, startY := f.x, f.y
		f.children(n)
		if f.y == startY {
			f.boxes[n] = Rect{X: startX, Y: startY, W: f.x - startX, H: f.rowH}
		} else {
			f.boxes[n] = Rect{X: 0, Y: startY, W: ViewportWidth, H: f.y - startY + f.rowH}
		}
	}
}

func (f *flow) text(s string) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return
	}
	w := float64(utf8.RuneCountInString(s)) * charWidth
	for w > 0 {
		avail := ViewportWidth - f.x
		seg := w
		if seg > avail {
			seg = avail
		}
		f.place(seg, lineHeight)
		w -= seg
		if w > 0 {
			f.newline()
		}
	}
}

// controlSize estimates a replaced element's box, preferring declared sizes.
func controlSize(n *html.Node) (float64, float64) {
	w, h := defaultControlSize(n)
	ew, eh := explicitSize(n)
	if ew >= 0 {
		w = ew
	}
	if eh >= 0 {
		h = eh
	}
	return w, h
}

func defaultControlSize(n *html.Node) (float64, float64) {
	switch n.Data {
	case "button":
		label := strings.Join(strings.Fields(nodeText(n)), " ")
		return float64(utf8.RuneCountInString(label))*charWidth + buttonPadding, controlHeight
	case "textarea":
		return 300, 60
	case "img", "iframe", "video", "canvas", "svg":
		return 100, 100
	case "input":
		switch strings.ToLower(attr(n, "type")) {
		case "hidden":
			return 0, 0
		case "checkbox", "radio":
			return 16, 16
		case "submit", "button", "reset":
			label := attr(n, "value")
			if label == "" {
				label = "Submit"
			}
			return float64(utf8.RuneCountInString(label))*charWidth + buttonPadding, controlHeight
		case "image":
			return 100, controlHeight
		}
	}
	return controlWidth, controlHeight
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return b.String()
}

// capturedBox returns geometry recorded by the browser snapshot provider.
func (e Element) capturedBox() (Rect, bool) {
	v, ok := e.Attr(BoxAttr)
	if !ok {
		return Rect{}, false
	}
	return parseBox(v)
}

// Box returns the element's on-screen box: the captured one when the
// snapshot has geometry, otherwise the flow-layout estimate.
func (e Element) Box() Rect {
	if box, ok := e.capturedBox(); ok {
		return box
	}
	if !e.Valid() {
		return Rect{}
	}
	return e.doc.layout.boxes[e.node]
}
