// Package vector merges per-category signal records into the fixed-order
// binary feature vector handed to the page classifier.
package vector

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/page-signals/pkg/signals"
	"github.com/dtnitsch/page-signals/pkg/vocab"
)

// Len is the number of entries in every feature vector: the signal fields of
// the nine categories followed by the two URL entries.
const Len = 88

// PageSignals aggregates the records of one extraction. A nil record means
// the category produced nothing and is zero-filled.
type PageSignals struct {
	Form          *signals.FormSignals          `json:"form,omitempty" yaml:"form,omitempty"`
	Anchor        *signals.AnchorSignals        `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Button        *signals.ButtonSignals        `json:"button,omitempty" yaml:"button,omitempty"`
	Input         *signals.InputSignals         `json:"input,omitempty" yaml:"input,omitempty"`
	Label         *signals.LabelSignals         `json:"label,omitempty" yaml:"label,omitempty"`
	Header        *signals.HeaderSignals        `json:"header,omitempty" yaml:"header,omitempty"`
	Checkbox      *signals.CheckboxSignals      `json:"checkbox,omitempty" yaml:"checkbox,omitempty"`
	Password      *signals.PasswordSignals      `json:"password,omitempty" yaml:"password,omitempty"`
	TextContainer *signals.TextContainerSignals `json:"div,omitempty" yaml:"div,omitempty"`
	URL           string                        `json:"url" yaml:"url"`
}

// Set stores a record in the slot for its category.
func (p *PageSignals) Set(r signals.Record) error {
	switch rec := r.(type) {
	case signals.FormSignals:
		p.Form = &rec
	case signals.AnchorSignals:
		p.Anchor = &rec
	case signals.ButtonSignals:
		p.Button = &rec
	case signals.InputSignals:
		p.Input = &rec
	case signals.LabelSignals:
		p.Label = &rec
	case signals.HeaderSignals:
		p.Header = &rec
	case signals.CheckboxSignals:
		p.Checkbox = &rec
	case signals.PasswordSignals:
		p.Password = &rec
	case signals.TextContainerSignals:
		p.TextContainer = &rec
	default:
		return fmt.Errorf("unsupported signal record %T", r)
	}
	return nil
}

// record returns the stored record for c, or nil when absent.
func (p *PageSignals) record(c signals.Category) (signals.Record, error) {
	switch c {
	case signals.CategoryForm:
		return orNil(p.Form), nil
	case signals.CategoryAnchor:
		return orNil(p.Anchor), nil
	case signals.CategoryButton:
		return orNil(p.Button), nil
	case signals.CategoryTextInput:
		return orNil(p.Input), nil
	case signals.CategoryLabel:
		return orNil(p.Label), nil
	case signals.CategoryHeader:
		return orNil(p.Header), nil
	case signals.CategoryCheckbox:
		return orNil(p.Checkbox), nil
	case signals.CategoryPassword:
		return orNil(p.Password), nil
	case signals.CategoryTextContainer:
		return orNil(p.TextContainer), nil
	default:
		return nil, &signals.UnknownCategoryError{Category: c}
	}
}

func orNil[R signals.Record](r *R) signals.Record {
	if r == nil {
		return nil
	}
	return *r
}

// FeatureVector is the classifier input: Len entries, each 0 or 1.
type FeatureVector []int

// String renders the vector comma separated.
func (v FeatureVector) String() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ",")
}

// Bits renders the vector as a string of 0 and 1 characters.
func (v FeatureVector) Bits() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, bit := range v {
		b.WriteByte(byte('0' + bit))
	}
	return b.String()
}

// MarshalJSON encodes the vector as an array of numbers.
func (v FeatureVector) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int(v))
}

// ParseBits is the inverse of Bits.
func ParseBits(s string) (FeatureVector, error) {
	if len(s) != Len {
		return nil, fmt.Errorf("feature vector has %d entries, want %d", len(s), Len)
	}
	v := make(FeatureVector, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[i] = 1
		default:
			return nil, fmt.Errorf("invalid feature bit %q at %d", s[i], i)
		}
	}
	return v, nil
}

// Assemble lays the page's records out in category order, zero-filling absent
// categories, and appends the two URL entries.
func Assemble(p *PageSignals, lib *vocab.Library) (FeatureVector, error) {
	return assemble(p, lib, signals.Order)
}

func assemble(p *PageSignals, lib *vocab.Library, order []signals.Category) (FeatureVector, error) {
	if p == nil {
		p = &PageSignals{}
	}
	v := make(FeatureVector, 0, Len)
	for _, c := range order {
		rec, err := p.record(c)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			width, err := signals.Width(c)
			if err != nil {
				return nil, err
			}
			v = append(v, make([]int, width)...)
			continue
		}
		for _, f := range rec.Fields() {
			v = append(v, bit(f))
		}
	}
	v = append(v, bit(HasResetPattern(lib, p.URL)), bit(HasNewsletterPattern(lib, p.URL)))
	return v, nil
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// HasResetPattern reports whether the URL names both a password and a
// reset-style action, in any order.
func HasResetPattern(lib *vocab.Library, pageURL string) bool {
	return lib.URLReset.MatchString(pageURL)
}

// HasNewsletterPattern reports whether the URL names a newsletter or mailing list.
func HasNewsletterPattern(lib *vocab.Library, pageURL string) bool {
	return lib.URLNewsletter.MatchString(pageURL)
}

// Describe returns the name of every vector entry in order. Segment names are
// prefixed with their category.
func Describe() []string {
	records := []signals.Record{
		signals.FormSignals{}, signals.AnchorSignals{}, signals.ButtonSignals{},
		signals.InputSignals{}, signals.LabelSignals{}, signals.HeaderSignals{},
		signals.CheckboxSignals{}, signals.PasswordSignals{}, signals.TextContainerSignals{},
	}
	names := make([]string, 0, Len)
	for _, r := range records {
		for _, n := range r.FieldNames() {
			names = append(names, r.Category().String()+"."+n)
		}
	}
	return append(names, "url.has_reset_pattern", "url.has_newsletter_pattern")
}
