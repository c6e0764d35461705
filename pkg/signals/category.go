// Package signals holds the per-category signal records and the extractors
// that fill them from a page snapshot.
package signals

import "fmt"

// Category is one of the nine structural element classes signals are
// extracted from.
type Category int

const (
	CategoryForm Category = iota
	CategoryAnchor
	CategoryButton
	CategoryTextInput
	CategoryLabel
	CategoryHeader
	CategoryCheckbox
	CategoryPassword
	CategoryTextContainer
)

// Order is the fixed order category segments appear in the feature vector.
var Order = []Category{
	CategoryForm,
	CategoryAnchor,
	CategoryButton,
	CategoryTextInput,
	CategoryLabel,
	CategoryHeader,
	CategoryCheckbox,
	CategoryPassword,
	CategoryTextContainer,
}

var categoryNames = map[Category]string{
	CategoryForm:          "form",
	CategoryAnchor:        "anchor",
	CategoryButton:        "button",
	CategoryTextInput:     "input",
	CategoryLabel:         "label",
	CategoryHeader:        "header",
	CategoryCheckbox:      "checkbox",
	CategoryPassword:      "password",
	CategoryTextContainer: "div",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// UnknownCategoryError reports a category outside the closed enumeration. It
// indicates a broken category table, never a page-data condition.
type UnknownCategoryError struct {
	Category Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unexpected element category: %s", e.Category)
}

// Width returns the number of vector entries the category contributes.
func Width(c Category) (int, error) {
	switch c {
	case CategoryForm:
		return len(FormSignals{}.Fields()), nil
	case CategoryAnchor:
		return len(AnchorSignals{}.Fields()), nil
	case CategoryButton:
		return len(ButtonSignals{}.Fields()), nil
	case CategoryTextInput:
		return len(InputSignals{}.Fields()), nil
	case CategoryLabel:
		return len(LabelSignals{}.Fields()), nil
	case CategoryHeader:
		return len(HeaderSignals{}.Fields()), nil
	case CategoryCheckbox:
		return len(CheckboxSignals{}.Fields()), nil
	case CategoryPassword:
		return len(PasswordSignals{}.Fields()), nil
	case CategoryTextContainer:
		return len(TextContainerSignals{}.Fields()), nil
	default:
		return 0, &UnknownCategoryError{Category: c}
	}
}
