package vocab

import (
	"fmt"
	"regexp"
)

// Mode selects how a pattern combines its vocabularies.
type Mode int

const (
	// ModeSubstring matches when any term occurs anywhere in the input.
	ModeSubstring Mode = iota
	// ModeExact matches when any term occurs between ASCII word boundaries.
	ModeExact
	// ModeCoOccurrence matches when both sub-patterns occur, in either order.
	ModeCoOccurrence
)

func (m Mode) String() string {
	switch m {
	case ModeSubstring:
		return "substring"
	case ModeExact:
		return "exact"
	case ModeCoOccurrence:
		return "co-occurrence"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Pattern is a compiled, immutable, case-insensitive matcher. It is safe for
// concurrent use.
type Pattern struct {
	mode   Mode
	first  *regexp.Regexp
	second *regexp.Regexp
}

// MatchString reports whether s matches the pattern.
func (p *Pattern) MatchString(s string) bool {
	if p == nil || s == "" {
		return false
	}
	if !p.first.MatchString(s) {
		return false
	}
	if p.mode == ModeCoOccurrence {
		return p.second.MatchString(s)
	}
	return true
}

// Mode returns the matching mode the pattern was compiled with.
func (p *Pattern) Mode() Mode { return p.mode }

// String returns the regular expression source. Co-occurrence patterns render
// both halves joined by " && ".
func (p *Pattern) String() string {
	if p.mode == ModeCoOccurrence {
		return p.first.String() + " && " + p.second.String()
	}
	return p.first.String()
}

func union(vocabs []Vocabulary) string {
	src := ""
	for i, v := range vocabs {
		if i > 0 {
			src += "|"
		}
		src += v.source()
	}
	return src
}

func compileUnion(vocabs []Vocabulary) (*Pattern, error) {
	re, err := regexp.Compile(`(?i)(` + union(vocabs) + `)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile substring pattern: %w", err)
	}
	return &Pattern{mode: ModeSubstring, first: re}, nil
}

func compileExactUnion(vocabs []Vocabulary) (*Pattern, error) {
	re, err := regexp.Compile(`(?i)\b(` + union(vocabs) + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile exact pattern: %w", err)
	}
	return &Pattern{mode: ModeExact, first: re}, nil
}

func compilePair(a, b Vocabulary) (*Pattern, error) {
	first, err := regexp.Compile(`(?i)(` + a.source() + `)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile co-occurrence pattern for %s: %w", a.Concept, err)
	}
	second, err := regexp.Compile(`(?i)(` + b.source() + `)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile co-occurrence pattern for %s: %w", b.Concept, err)
	}
	return &Pattern{mode: ModeCoOccurrence, first: first, second: second}, nil
}
