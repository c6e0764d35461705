package detector

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDomainType(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://login.example.gov/signin", "gov"},
		{"https://www.stanford.edu/", "edu"},
		{"https://arxiv.org/login", "academic"},
		{"https://m.example.com/", "mobile"},
		{"https://accounts.example.com:8443/", "commercial"},
		{"file:///tmp/page.html", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, detectDomainType(u))
		})
	}
}

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.example.de/anmelden", "de"},
		{"https://www.example.co.uk/", "uk"},
		{"https://www.irs.gov/", "us"},
		{"https://example.com:8080/", "unknown"},
		{"http://localhost/", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, detectCountry(u))
		})
	}
}

func TestAnalyze(t *testing.T) {
	d := New()
	html := `<html lang="en-US"><head><title>  Sign in to your account </title></head><body>
		<form><label>Email address</label><input type="email">
		<label>Password</label><input type="password">
		<p>Enter your email address and password to continue to your dashboard.</p>
		<button>Sign in</button></form></body></html>`

	meta, err := d.Analyze("https://accounts.example.de/login", []byte(html))
	require.NoError(t, err)
	assert.Equal(t, "en", meta.DeclaredLanguage)
	assert.Equal(t, "en", meta.Language)
	assert.Greater(t, meta.LanguageConfidence, 0.0)
	assert.Contains(t, meta.Title, "Sign in")
	assert.Equal(t, "commercial", meta.DomainType)
	assert.Equal(t, "de", meta.Country)
}

func TestAnalyzeShortPage(t *testing.T) {
	meta, err := New().Analyze("https://example.com/", []byte(`<html><body>Hi</body></html>`))
	require.NoError(t, err)
	assert.Empty(t, meta.Language)
	assert.Zero(t, meta.LanguageConfidence)
	assert.Empty(t, meta.DeclaredLanguage)
}

func TestAnalyzeReadsSiteMetadata(t *testing.T) {
	html := `<html><head><title>Log in</title>
		<meta property="og:site_name" content="Example Shop"></head>
		<body><form><input type="email"><input type="password"><button>Log in</button></form></body></html>`

	meta, err := New().Analyze("https://shop.example.com/login", []byte(html))
	require.NoError(t, err)
	assert.Equal(t, "Example Shop", meta.SiteName)
	assert.Equal(t, "Log in", meta.Title)
}
