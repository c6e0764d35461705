package vocab

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Library is the process-wide set of vocabularies and the patterns compiled
// from them. It is built once and never mutated.
type Library struct {
	vocabs map[Concept]Vocabulary

	Username     *Pattern
	PasswordAttr *Pattern
	LoginAction  *Pattern
	Login        *Pattern
	Password     *Pattern
	Forgot       *Pattern
	ForgotAction *Pattern
	Register     *Pattern
	RegisterAct  *Pattern
	RememberAct  *Pattern
	RememberMe   *Pattern
	Newsletter   *Pattern
	New          *Pattern
	Confirm      *Pattern
	Current      *Pattern
	Next         *Pattern
	Email        *Pattern

	PasswordCombined      *Pattern
	PasswordCombinedExact *Pattern
	ForgotCombinedExact   *Pattern
	RegisterCombined      *Pattern
	RegisterCombinedExact *Pattern
	LoginCombined         *Pattern
	LoginActionExact      *Pattern
	RegisterActionExact   *Pattern
	LoginCombinedExact    *Pattern

	// ForgotPassword requires a password term and a forgot term in the same string.
	ForgotPassword *Pattern
	HaveAccount    *Pattern
	NotHaveAccount *Pattern

	URLReset      *Pattern
	URLNewsletter *Pattern
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded vocabulary.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load(bytes.NewReader(defaultVocab))
	})
	return defaultLib, defaultErr
}

// MustDefault is like Default but panics if the embedded vocabulary is broken.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// Load builds a library from a vocabulary YAML document.
func Load(r io.Reader) (*Library, error) {
	vocabs, err := parseVocabularies(r)
	if err != nil {
		return nil, err
	}

	l := &Library{vocabs: vocabs}
	b := builder{lib: l}

	l.Username = b.compile(Username)
	l.PasswordAttr = b.compile(PasswordAttr)
	l.LoginAction = b.compile(LoginAction)
	l.Login = b.compile(Login)
	l.Password = b.compile(Password)
	l.Forgot = b.compile(Forgot)
	l.ForgotAction = b.compile(ForgotAction)
	l.Register = b.compile(Register)
	l.RegisterAct = b.compile(RegisterAction)
	l.RememberAct = b.compile(RememberMeAction)
	l.RememberMe = b.compile(RememberMe)
	l.Newsletter = b.compile(Newsletter)
	l.New = b.compile(New)
	l.Confirm = b.compile(Confirm)
	l.Current = b.compile(Current)
	l.Next = b.compile(Next)
	l.Email = b.compile(Email)

	l.PasswordCombined = b.compile(Password, PasswordAttr)
	l.PasswordCombinedExact = b.exact(Password, PasswordAttr)
	l.ForgotCombinedExact = b.exact(Forgot, ForgotAction)
	l.RegisterCombined = b.compile(Register, RegisterAction)
	l.RegisterCombinedExact = b.exact(Register, RegisterAction)
	l.LoginCombined = b.compile(Login, LoginAction)
	l.LoginActionExact = b.exact(LoginAction)
	l.RegisterActionExact = b.exact(RegisterAction)
	l.LoginCombinedExact = b.exact(Login, LoginAction)

	l.ForgotPassword = b.pair(PasswordAttr, ForgotAction)
	l.HaveAccount = b.pair(Have, Account)
	l.NotHaveAccount = b.pair(NotHave, Account)

	l.URLReset = b.pair(URLPassword, URLReset)
	l.URLNewsletter = b.compile(URLNewsletter)

	if b.err != nil {
		return nil, b.err
	}
	return l, nil
}

// Vocabulary returns the vocabulary for a concept.
func (l *Library) Vocabulary(c Concept) (Vocabulary, bool) {
	v, ok := l.vocabs[c]
	return v, ok
}

// Compile builds a substring-union pattern over the given concepts.
func (l *Library) Compile(concepts ...Concept) (*Pattern, error) {
	vocabs, err := l.lookup(concepts)
	if err != nil {
		return nil, err
	}
	return compileUnion(vocabs)
}

// CompileExact builds a word-boundary union pattern over the given concepts.
func (l *Library) CompileExact(concepts ...Concept) (*Pattern, error) {
	vocabs, err := l.lookup(concepts)
	if err != nil {
		return nil, err
	}
	return compileExactUnion(vocabs)
}

// CompileCoOccurrence builds a pattern requiring a term of a and a term of b
// anywhere in the same string.
func (l *Library) CompileCoOccurrence(a, b Concept) (*Pattern, error) {
	vocabs, err := l.lookup([]Concept{a, b})
	if err != nil {
		return nil, err
	}
	return compilePair(vocabs[0], vocabs[1])
}

func (l *Library) lookup(concepts []Concept) ([]Vocabulary, error) {
	if len(concepts) == 0 {
		return nil, fmt.Errorf("no concepts given")
	}
	vocabs := make([]Vocabulary, 0, len(concepts))
	for _, c := range concepts {
		v, ok := l.vocabs[c]
		if !ok {
			return nil, fmt.Errorf("unknown concept %q", c)
		}
		vocabs = append(vocabs, v)
	}
	return vocabs, nil
}

// builder keeps the first compile error so Load can build every pattern in a
// straight line.
type builder struct {
	lib *Library
	err error
}

func (b *builder) compile(concepts ...Concept) *Pattern {
	return b.keep(b.lib.Compile(concepts...))
}

func (b *builder) exact(concepts ...Concept) *Pattern {
	return b.keep(b.lib.CompileExact(concepts...))
}

func (b *builder) pair(a, c Concept) *Pattern {
	return b.keep(b.lib.CompileCoOccurrence(a, c))
}

func (b *builder) keep(p *Pattern, err error) *Pattern {
	if err != nil && b.err == nil {
		b.err = err
	}
	return p
}
