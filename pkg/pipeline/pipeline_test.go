package pipeline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/page-signals/pkg/dom"
	"github.com/dtnitsch/page-signals/pkg/signals"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

// Offsets of the category segments in the vector.
const (
	formAt      = 0
	buttonAt    = 8
	inputAt     = 34
	passwordAt  = 73
	containerAt = 81
)

func extractHTML(t *testing.T, pageURL, src string) vector.FeatureVector {
	t.Helper()
	v, err := ExtractHTML(pageURL, strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, v, vector.Len)
	return v
}

func TestScenarios(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		v := extractHTML(t, "", "")
		assert.Equal(t, strings.Repeat("0", vector.Len), v.Bits())
	})

	t.Run("login form", func(t *testing.T) {
		v := extractHTML(t, "https://example.com/", `<html><body><form>
			<input type="text" name="username">
			<input type="password">
			<button type="submit">Log in</button>
		</form></body></html>`)
		assert.Equal(t, 0, v[formAt])
		assert.Equal(t, 1, v[inputAt+7], "username field")
		assert.Equal(t, 1, v[passwordAt+6], "any password field")
		assert.Equal(t, 0, v[passwordAt+7], "several password fields")
		assert.Equal(t, 1, v[buttonAt+6], "login text")
		assert.Equal(t, 1, v[buttonAt+7], "login text on form")
	})

	t.Run("confirm password label", func(t *testing.T) {
		v := extractHTML(t, "https://example.com/", `<body><form>
			<input type="password"><label>Confirm new password</label>
		</form></body>`)
		assert.Equal(t, 1, v[passwordAt])
		assert.Equal(t, 1, v[passwordAt+1])
	})

	t.Run("already have an account", func(t *testing.T) {
		v := extractHTML(t, "https://example.com/", `<body><div>Already have an account? Log in</div></body>`)
		assert.Equal(t, 1, v[containerAt])
		assert.Equal(t, 0, v[containerAt+1])
	})

	t.Run("reset password url", func(t *testing.T) {
		v := extractHTML(t, "https://example.com/reset-password", "")
		assert.Equal(t, 1, v[vector.Len-2])
		assert.Equal(t, 0, v[vector.Len-1])
	})
}

func TestExtractIsIdempotent(t *testing.T) {
	doc, err := dom.ParseString(`<body><form class="login-form">
		<label for="e">Email</label><input id="e" type="email">
		<input type="password" placeholder="Password">
		<a href="/forgot-password">Forgot password?</a>
		<input type="checkbox" name="remember"><label>Remember me</label>
		<button>Sign in</button>
	</form><p>Don't have an account? Sign up</p></body>`, "https://example.com/login")
	require.NoError(t, err)

	first, err := Extract(doc)
	require.NoError(t, err)
	second, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, strings.Repeat("0", vector.Len), first.Bits())
}

func TestHiddenElementsContributeNothing(t *testing.T) {
	v := extractHTML(t, "https://example.com/", `<body>
		<form style="display:none"><input name="username"><button>Log in</button></form>
		<div hidden>Already have an account?</div>
		<input type="password" style="width:0">
		<a href="/forgot-password" style="visibility:hidden">Forgot password?</a>
	</body>`)
	assert.Equal(t, strings.Repeat("0", vector.Len), v.Bits())
}

func TestSpanFallbackForButtons(t *testing.T) {
	doc, err := dom.ParseString(`<body><span>Sign up</span></body>`, "https://example.com/")
	require.NoError(t, err)

	p, err := ExtractSignals(doc)
	require.NoError(t, err)
	require.NotNil(t, p.Button)
	assert.True(t, p.Button.RegisterPatternInTextContent)
	assert.Equal(t, "https://example.com/", p.URL)
}

func TestFailedCategoryIsZeroFilled(t *testing.T) {
	var logs bytes.Buffer
	x, err := NewExtractor(slog.New(slog.NewJSONHandler(&logs, nil)), nil)
	require.NoError(t, err)

	saved := signals.Extractors[signals.CategoryAnchor]
	signals.Extractors[signals.CategoryAnchor] = func(signals.Scope, []dom.Element) signals.Record {
		panic("boom")
	}
	t.Cleanup(func() { signals.Extractors[signals.CategoryAnchor] = saved })

	doc, err := dom.ParseString(`<body><a href="/forgot-password">Forgot password?</a></body>`, "https://example.com/")
	require.NoError(t, err)

	p, err := x.Signals(doc)
	require.NoError(t, err)
	assert.Nil(t, p.Anchor)
	assert.NotNil(t, p.Form)
	assert.Contains(t, logs.String(), "category extraction failed")

	v, err := x.Extract(doc)
	require.NoError(t, err)
	assert.Len(t, v, vector.Len)
}

func TestInputTypesMatchIgnoringCase(t *testing.T) {
	doc, err := dom.ParseString(`<body><form>
		<input type="Password" name="login">
		<input type="PASSWORD">
		<input type="CheckBox" name="remember">
	</form></body>`, "https://example.com/")
	require.NoError(t, err)

	p, err := ExtractSignals(doc)
	require.NoError(t, err)
	require.NotNil(t, p.Password)
	assert.True(t, p.Password.SeveralPasswordFields)
	assert.False(t, p.Password.AnyPasswordField)

	require.NotNil(t, p.Checkbox)
	assert.True(t, p.Checkbox.RememberMePattern)

	require.NotNil(t, p.Input)
	assert.False(t, p.Input.LoginPattern, "password field counted as text input")
}
