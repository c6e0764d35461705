package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// inlineStyle parses a style attribute into lower-case property/value pairs.
// Later declarations win, as in CSS.
func inlineStyle(n *html.Node) map[string]string {
	raw := attr(n, "style")
	if raw == "" {
		return nil
	}
	props := make(map[string]string)
	for _, decl := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		if name == "" {
			continue
		}
		props[name] = value
	}
	return props
}

// parseLength reads a CSS or attribute length in pixels. Percentages, auto and
// other relative units are reported as unknown.
func parseLength(v string) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return 0, false
	}
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// explicitSize returns the width and height declared by inline style or by the
// width/height attributes. Unknown dimensions are negative.
func explicitSize(n *html.Node) (w, h float64) {
	w, h = -1, -1
	if v, ok := parseLength(attr(n, "width")); ok {
		w = v
	}
	if v, ok := parseLength(attr(n, "height")); ok {
		h = v
	}
	style := inlineStyle(n)
	if v, ok := parseLength(style["width"]); ok {
		w = v
	}
	if v, ok := parseLength(style["height"]); ok {
		h = v
	}
	return w, h
}

// parseBox reads the "x,y,w,h" geometry written by the browser snapshot provider.
func parseBox(v string) (Rect, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return Rect{}, false
	}
	var vals [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Rect{}, false
		}
		vals[i] = f
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, true
}
