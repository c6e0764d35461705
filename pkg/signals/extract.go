package signals

import (
	"github.com/dtnitsch/page-signals/pkg/dom"
	"github.com/dtnitsch/page-signals/pkg/vocab"
)

// Scope is what every extractor reads besides its own candidates: the snapshot
// and the compiled patterns.
type Scope struct {
	Doc *dom.Document
	Lib *vocab.Library
}

// Extractor turns one category's candidate elements into its record.
type Extractor func(s Scope, elements []dom.Element) Record

// fold threads a record through each candidate. The record is a value, so
// every step returns an updated copy.
func fold[R any](elements []dom.Element, step func(R, dom.Element) R) R {
	var acc R
	for _, el := range elements {
		acc = step(acc, el)
	}
	return acc
}

// Extractors maps each category to its extractor.
var Extractors = map[Category]Extractor{
	CategoryForm:          func(s Scope, els []dom.Element) Record { return ExtractForms(s, els) },
	CategoryAnchor:        func(s Scope, els []dom.Element) Record { return ExtractAnchors(s, els) },
	CategoryButton:        func(s Scope, els []dom.Element) Record { return ExtractButtons(s, els) },
	CategoryTextInput:     func(s Scope, els []dom.Element) Record { return ExtractInputs(s, els) },
	CategoryLabel:         func(s Scope, els []dom.Element) Record { return ExtractLabels(s, els) },
	CategoryHeader:        func(s Scope, els []dom.Element) Record { return ExtractHeaders(s, els) },
	CategoryCheckbox:      func(s Scope, els []dom.Element) Record { return ExtractCheckboxes(s, els) },
	CategoryPassword:      func(s Scope, els []dom.Element) Record { return ExtractPasswords(s, els) },
	CategoryTextContainer: func(s Scope, els []dom.Element) Record { return ExtractTextContainers(s, els) },
}
