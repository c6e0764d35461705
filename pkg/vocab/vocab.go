// Package vocab holds the multilingual vocabularies used to recognise login,
// registration and noise concepts, and compiles them into case-insensitive
// patterns.
package vocab

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var defaultVocab []byte

// fragmentPrefix marks a term that is inserted into a pattern as a regex fragment
// instead of being quoted.
const fragmentPrefix = "re:"

// Concept names a semantic category such as "login" or "forgot".
type Concept string

const (
	Username         Concept = "username"
	Password         Concept = "password"
	PasswordAttr     Concept = "password_attr"
	Login            Concept = "login"
	LoginAction      Concept = "login_action"
	Register         Concept = "register"
	RegisterAction   Concept = "register_action"
	Forgot           Concept = "forgot"
	ForgotAction     Concept = "forgot_action"
	RememberMe       Concept = "remember_me"
	RememberMeAction Concept = "remember_me_action"
	Newsletter       Concept = "newsletter"
	New              Concept = "new"
	Confirm          Concept = "confirm"
	Current          Concept = "current"
	Next             Concept = "next"
	Have             Concept = "have"
	NotHave          Concept = "not_have"
	Account          Concept = "account"
	Email            Concept = "email"
	URLReset         Concept = "url_reset"
	URLPassword      Concept = "url_password"
	URLNewsletter    Concept = "url_newsletter"
)

// Concepts lists every concept a vocabulary file must define.
var Concepts = []Concept{
	Username, Password, PasswordAttr, Login, LoginAction, Register, RegisterAction,
	Forgot, ForgotAction, RememberMe, RememberMeAction, Newsletter, New, Confirm,
	Current, Next, Have, NotHave, Account, Email, URLReset, URLPassword, URLNewsletter,
}

// Vocabulary is the ordered set of term variants for one concept, across languages.
type Vocabulary struct {
	Concept   Concept
	Languages []string
	Terms     []string
}

// source returns the alternation body for the vocabulary, without grouping.
func (v Vocabulary) source() string {
	parts := make([]string, 0, len(v.Terms))
	for _, term := range v.Terms {
		if strings.HasPrefix(term, fragmentPrefix) {
			parts = append(parts, strings.TrimPrefix(term, fragmentPrefix))
			continue
		}
		parts = append(parts, regexp.QuoteMeta(term))
	}
	return strings.Join(parts, "|")
}

type vocabFile struct {
	Concepts map[string]map[string][]string `yaml:"concepts"`
}

// parseVocabularies decodes a vocabulary document. Languages are sorted so that
// the compiled pattern source is stable between runs.
func parseVocabularies(r io.Reader) (map[Concept]Vocabulary, error) {
	var vf vocabFile
	if err := yaml.NewDecoder(r).Decode(&vf); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary: %w", err)
	}

	vocabs := make(map[Concept]Vocabulary, len(vf.Concepts))
	for name, byLang := range vf.Concepts {
		langs := make([]string, 0, len(byLang))
		for lang := range byLang {
			langs = append(langs, lang)
		}
		sort.Strings(langs)

		v := Vocabulary{Concept: Concept(name), Languages: langs}
		for _, lang := range langs {
			for _, term := range byLang[lang] {
				term = strings.TrimSpace(term)
				if term == "" {
					continue
				}
				v.Terms = append(v.Terms, term)
			}
		}
		vocabs[v.Concept] = v
	}

	for _, c := range Concepts {
		v, ok := vocabs[c]
		if !ok || len(v.Terms) == 0 {
			return nil, fmt.Errorf("vocabulary is missing concept %q", c)
		}
	}
	return vocabs, nil
}
