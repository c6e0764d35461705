package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryLoads(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	require.NotNil(t, lib)

	for _, c := range Concepts {
		v, ok := lib.Vocabulary(c)
		assert.True(t, ok, "missing concept %s", c)
		assert.NotEmpty(t, v.Terms, "empty concept %s", c)
	}

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, lib, again)
}

func TestSubstringAndExactModes(t *testing.T) {
	lib := MustDefault()

	tests := []struct {
		name    string
		pattern *Pattern
		input   string
		want    bool
	}{
		{"substring matches inside word", lib.LoginAction, "logindex", true},
		{"exact rejects inside word", lib.LoginCombinedExact, "logindex", false},
		{"exact matches phrase", lib.LoginCombinedExact, "Please Log in", true},
		{"exact matches french", lib.LoginCombinedExact, "Connexion", true},
		{"case insensitive", lib.Newsletter, "SUBSCRIBE to our NEWSLETTER", true},
		{"register german", lib.RegisterCombinedExact, "Jetzt registrieren", true},
		{"forgot exact", lib.ForgotCombinedExact, "Forgot your password?", true},
		{"next spanish", lib.Next, "Siguiente", true},
		{"empty input", lib.Login, "", false},
		{"unrelated text", lib.Register, "Shopping cart", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.MatchString(tt.input))
		})
	}
}

func TestCoOccurrenceIsOrderIndependent(t *testing.T) {
	lib := MustDefault()

	assert.Equal(t, ModeCoOccurrence, lib.HaveAccount.Mode())
	assert.True(t, lib.HaveAccount.MatchString("Already have an account? Log in"))
	assert.True(t, lib.HaveAccount.MatchString("Account? You already have one"))
	assert.False(t, lib.HaveAccount.MatchString("Already here"))
	assert.True(t, lib.NotHaveAccount.MatchString("Don't have an account? Sign up"))
	assert.False(t, lib.NotHaveAccount.MatchString("Already have an account?"))
}

func TestURLPatterns(t *testing.T) {
	lib := MustDefault()

	assert.True(t, lib.URLReset.MatchString("https://example.com/reset-password"))
	assert.True(t, lib.URLReset.MatchString("https://example.com/pwd/recover"))
	assert.False(t, lib.URLReset.MatchString("https://example.com/password"))
	assert.False(t, lib.URLReset.MatchString("https://example.com/reset"))
	assert.True(t, lib.URLNewsletter.MatchString("https://example.com/mailing-list/join"))
	assert.False(t, lib.URLNewsletter.MatchString("https://example.com/reset-password"))
}

func TestCompileOperations(t *testing.T) {
	lib := MustDefault()

	p, err := lib.Compile(Login)
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, p.Mode())

	p, err = lib.CompileExact(Register, RegisterAction)
	require.NoError(t, err)
	assert.Equal(t, ModeExact, p.Mode())
	assert.True(t, strings.HasPrefix(p.String(), `(?i)\b(`))

	_, err = lib.Compile(Concept("nope"))
	assert.Error(t, err)

	_, err = lib.Compile()
	assert.Error(t, err)
}

func TestLoadRejectsIncompleteVocabulary(t *testing.T) {
	_, err := Load(strings.NewReader("concepts:\n  login:\n    en: [login]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing concept")
}

func TestLoadRejectsBadFragment(t *testing.T) {
	doc := strings.Builder{}
	doc.WriteString("concepts:\n")
	for _, c := range Concepts {
		doc.WriteString("  " + string(c) + ":\n    en: [\"re:(\"]\n")
	}
	_, err := Load(strings.NewReader(doc.String()))
	assert.Error(t, err)
}

func TestNilPatternNeverMatches(t *testing.T) {
	var p *Pattern
	assert.False(t, p.MatchString("login"))
}
