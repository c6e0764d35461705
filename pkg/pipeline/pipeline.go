// Package pipeline is the entry point: it selects the candidates of every
// category from a snapshot, runs the extractors and assembles the vector.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/page-signals/pkg/dom"
	"github.com/dtnitsch/page-signals/pkg/signals"
	"github.com/dtnitsch/page-signals/pkg/vector"
	"github.com/dtnitsch/page-signals/pkg/vocab"
)

// categoryRule ties a category to the function selecting its candidates.
type categoryRule struct {
	category signals.Category
	selector func(d *dom.Document) []dom.Element
}

func visibleOf(selector string) func(d *dom.Document) []dom.Element {
	return func(d *dom.Document) []dom.Element { return d.SelectVisibleByTag(selector) }
}

// buttons falls back to visible spans on pages without real submit controls.
func buttons(d *dom.Document) []dom.Element {
	if found := d.SelectVisibleByTag("input[type=submit i],input[type=image i],button"); len(found) > 0 {
		return found
	}
	return d.SelectVisibleByTag("span")
}

func headers(d *dom.Document) []dom.Element {
	out := d.SelectVisibleByTag("h1,h2,h3,h4,h5")
	out = append(out, d.SelectVisibleByTag("div[class*=heading],div[class*=form-title],[role=heading]")...)
	return append(out, d.SelectVisibleByTag("legend")...)
}

// Text containers are filtered for visibility after the text checks.
func textContainers(d *dom.Document) []dom.Element {
	return d.SelectByTag("div,span,p")
}

var rules = []categoryRule{
	{signals.CategoryForm, visibleOf("form")},
	{signals.CategoryButton, buttons},
	{signals.CategoryAnchor, visibleOf("a")},
	{signals.CategoryLabel, visibleOf("label")},
	{signals.CategoryHeader, headers},
	{signals.CategoryCheckbox, visibleOf("input[type=checkbox i]")},
	{signals.CategoryTextInput, visibleOf("input:not([type=submit i]):not([type=password i]):not([type=checkbox i]):not([type=image i])")},
	{signals.CategoryPassword, visibleOf("input[type=password i]")},
	{signals.CategoryTextContainer, textContainers},
}

// Extractor runs extractions against one vocabulary library. It holds no
// per-page state and is safe for concurrent use.
type Extractor struct {
	lib    *vocab.Library
	logger *slog.Logger
}

// NewExtractor returns an extractor. A nil logger discards output; a nil
// library selects the embedded vocabulary.
func NewExtractor(logger *slog.Logger, lib *vocab.Library) (*Extractor, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if lib == nil {
		var err error
		if lib, err = vocab.Default(); err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}
	return &Extractor{lib: lib, logger: logger}, nil
}

// Library returns the patterns the extractor matches with.
func (x *Extractor) Library() *vocab.Library { return x.lib }

// Signals runs every category extractor over the snapshot. A category whose
// extractor fails is logged and left absent, which zero-fills its segment.
func (x *Extractor) Signals(doc *dom.Document) (*vector.PageSignals, error) {
	p := &vector.PageSignals{URL: doc.URL()}
	scope := signals.Scope{Doc: doc, Lib: x.lib}

	for _, rule := range rules {
		extract, ok := signals.Extractors[rule.category]
		if !ok {
			return nil, &signals.UnknownCategoryError{Category: rule.category}
		}
		rec, err := x.runCategory(rule, extract, scope)
		if err != nil {
			x.logger.Warn("category extraction failed", "category", rule.category.String(), "url", doc.URL(), "error", err)
			continue
		}
		if err := p.Set(rec); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (x *Extractor) runCategory(rule categoryRule, extract signals.Extractor, scope signals.Scope) (rec signals.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s extractor: %v", rule.category, r)
		}
	}()
	return extract(scope, rule.selector(scope.Doc)), nil
}

// Extract returns the feature vector of one snapshot.
func (x *Extractor) Extract(doc *dom.Document) (vector.FeatureVector, error) {
	start := time.Now()
	p, err := x.Signals(doc)
	if err != nil {
		return nil, err
	}
	v, err := vector.Assemble(p, x.lib)
	if err != nil {
		return nil, err
	}
	x.logger.Debug("extracted feature vector", "url", doc.URL(), "bits", v.Bits(), "duration_ms", time.Since(start).Milliseconds())
	return v, nil
}

// ExtractHTML parses an HTML snapshot and extracts its vector.
func (x *Extractor) ExtractHTML(pageURL string, r io.Reader) (vector.FeatureVector, error) {
	doc, err := dom.Parse(r, pageURL)
	if err != nil {
		return nil, err
	}
	return x.Extract(doc)
}

func defaultExtractor() (*Extractor, error) {
	return NewExtractor(nil, nil)
}

// Extract runs the default extractor over a snapshot.
func Extract(doc *dom.Document) (vector.FeatureVector, error) {
	x, err := defaultExtractor()
	if err != nil {
		return nil, err
	}
	return x.Extract(doc)
}

// ExtractSignals runs the default extractor and returns the records.
func ExtractSignals(doc *dom.Document) (*vector.PageSignals, error) {
	x, err := defaultExtractor()
	if err != nil {
		return nil, err
	}
	return x.Signals(doc)
}

// ExtractHTML parses and extracts with the default extractor.
func ExtractHTML(pageURL string, r io.Reader) (vector.FeatureVector, error) {
	x, err := defaultExtractor()
	if err != nil {
		return nil, err
	}
	return x.ExtractHTML(pageURL, r)
}
