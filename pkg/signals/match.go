package signals

import (
	"strings"
	"unicode/utf16"

	"github.com/dtnitsch/page-signals/pkg/dom"
	"github.com/dtnitsch/page-signals/pkg/vocab"
)

// maxContainerText bounds the text length a container may have to count as a
// prompt. Longer blocks are page copy, not account prompts.
const maxContainerText = 100

// Selectors shared by the field-set helpers.
const (
	usernameCandidates = `input[type=email i],input[type=text i],input[type="" i],input:not([type])`
	emailCandidates    = `input[type=text i],input[type="" i],input:not([type])`
)

// attrsMatch reports whether every pattern matches at least one attribute
// value of el. The patterns may match different attributes.
func attrsMatch(el dom.Element, patterns ...*vocab.Pattern) bool {
	values := el.AttrValues()
	if len(values) == 0 {
		return false
	}
	for _, p := range patterns {
		if !anyMatch(p, values) {
			return false
		}
	}
	return true
}

func anyMatch(p *vocab.Pattern, values []string) bool {
	for _, v := range values {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// textMatch reports whether the element's text content matches p.
func textMatch(el dom.Element, p *vocab.Pattern) bool {
	return p.MatchString(el.Text())
}

// attrsOrTextMatch is the either-or test checkboxes and text inputs use.
func attrsOrTextMatch(el dom.Element, attrP, textP *vocab.Pattern) bool {
	return attrsMatch(el, attrP) || textMatch(el, textP)
}

// identityAttrsMatch tests only the identifying attributes: id, class, value
// and name.
func identityAttrsMatch(el dom.Element, p *vocab.Pattern) bool {
	if !el.Valid() {
		return false
	}
	return p.MatchString(el.ID()) ||
		p.MatchString(el.ClassName()) ||
		p.MatchString(el.AttrValue("value")) ||
		p.MatchString(el.AttrValue("name"))
}

// isUsernameField reports whether an input looks like it takes a username.
func isUsernameField(el dom.Element, lib *vocab.Library) bool {
	if ac, ok := el.Autocomplete(); ok && ac == "username" {
		return true
	}
	return identityAttrsMatch(el, lib.Username) || labelMatches(el, lib.Username)
}

// isEmailField reports whether an input takes an email address: an email type,
// or a text input whose attributes mention email.
func isEmailField(el dom.Element, lib *vocab.Library) bool {
	typ, ok := el.InputType()
	if !ok {
		return false
	}
	switch typ {
	case "email":
		return true
	case "text":
		return attrsMatch(el, lib.Email)
	}
	return false
}

var personalDataTypes = map[string]bool{
	"date": true, "datetime-local": true, "month": true, "number": true,
	"email": true, "text": true, "tel": true, "week": true,
}

// canContainPersonalData reports whether an input's type can carry personal data.
func canContainPersonalData(el dom.Element) bool {
	typ, ok := el.InputType()
	return ok && personalDataTypes[typ]
}

// labelMatches tests the text that labels a control, trying in order: its
// first associated label, its aria-labelledby targets, the enclosing table row
// and the preceding definition term. The first source found decides.
func labelMatches(el dom.Element, p *vocab.Pattern) bool {
	if labels, ok := el.Labels(); ok && len(labels) > 0 {
		return textMatch(labels[0], p)
	}

	if ref, ok := el.Attr("aria-labelledby"); ok {
		var targets []dom.Element
		for _, id := range strings.Split(ref, " ") {
			if t, found := el.Document().ElementByID(id); found {
				targets = append(targets, t)
			}
		}
		switch len(targets) {
		case 0:
		case 1:
			return textMatch(targets[0], p)
		default:
			nearest, _ := dom.Nearest(el, targets)
			return textMatch(nearest, p)
		}
	}

	parent, ok := el.Parent()
	if !ok {
		return false
	}
	switch parent.Tag() {
	case "td":
		if row, ok := parent.Parent(); ok {
			return textMatch(row, p)
		}
	case "dd":
		if term, ok := parent.PrevSibling(); ok {
			return textMatch(term, p)
		}
	}
	return false
}

// closestLabelMatches tests the label adjacent to a control: the previous
// sibling label, else the next sibling label, else the nearest label inside
// the control's form.
func closestLabelMatches(el dom.Element, p *vocab.Pattern) bool {
	if prev, ok := el.PrevSibling(); ok && prev.Tag() == "label" {
		return textMatch(prev, p)
	}
	if next, ok := el.NextSibling(); ok && next.Tag() == "label" {
		return textMatch(next, p)
	}
	form, ok := el.Form()
	if !ok {
		return false
	}
	nearest, ok := dom.Nearest(el, form.SelectWithin("label"))
	if !ok {
		return false
	}
	return textMatch(nearest, p)
}

// describesPassword tests a password field's label, its attributes and the
// label closest to it.
func describesPassword(el dom.Element, p *vocab.Pattern) bool {
	return labelMatches(el, p) || attrsMatch(el, p) || closestLabelMatches(el, p)
}

// visibleUsernameFields returns the visible inputs that take a username.
func visibleUsernameFields(doc *dom.Document, lib *vocab.Library) []dom.Element {
	var out []dom.Element
	for _, el := range doc.SelectByTag(usernameCandidates) {
		if isUsernameField(el, lib) && el.Visible() {
			out = append(out, el)
		}
	}
	return out
}

// visibleEmailFields returns the visible email inputs followed by the visible
// text inputs whose attributes mention email.
func visibleEmailFields(doc *dom.Document, lib *vocab.Library) []dom.Element {
	out := doc.SelectVisibleByTag("input[type=email i]")
	for _, el := range doc.SelectVisibleByTag(emailCandidates) {
		if attrsMatch(el, lib.Email) {
			out = append(out, el)
		}
	}
	return out
}

// shortText reports whether the element's text fits a prompt, counting length
// in UTF-16 code units as browsers do.
func shortText(el dom.Element) bool {
	return len(utf16.Encode([]rune(el.Text()))) <= maxContainerText
}

// lastShortMatch returns the last visible container with short text matching p.
func lastShortMatch(containers []dom.Element, p *vocab.Pattern) (dom.Element, bool) {
	for i := len(containers) - 1; i >= 0; i-- {
		el := containers[i]
		if shortText(el) && textMatch(el, p) && el.Visible() {
			return el, true
		}
	}
	return dom.Element{}, false
}
