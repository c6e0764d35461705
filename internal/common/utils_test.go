package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  https://example.com/login  ", "https://example.com/login"},
		{"[sign in](https://example.com/signin)", "https://example.com/signin"},
		{"https://example.com/register,", "https://example.com/register"},
		{"<https://example.com>", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeURL(tt.in))
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	valid, invalid := SanitizeAndValidateURLs([]string{
		"https://example.com/login",
		"http://127.0.0.1:8080/signup?ref=nav",
		"https://example.com#register",
		"ftp://example.com/",
		"https://exa mple.com/",
		"not a url",
	})
	assert.Equal(t, []string{
		"https://example.com/login",
		"http://127.0.0.1:8080/signup?ref=nav",
		"https://example.com#register",
	}, valid)
	assert.Len(t, invalid, 3)
}

func TestReadTargets(t *testing.T) {
	targets, err := ReadTargets(strings.NewReader("# login pages\nhttps://a.example/login\n\n  https://b.example/signin  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/login", "https://b.example/signin"}, targets)
}

func TestSplitTargets(t *testing.T) {
	assert.Equal(t, []string{"a.html", "b.html"}, SplitTargets(" a.html,, b.html ,"))
	assert.Empty(t, SplitTargets(""))
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, ContentHash([]byte("<html>")), ContentHash([]byte("<html>")))
	assert.NotEqual(t, ContentHash([]byte("a")), ContentHash([]byte("b")))
	assert.Len(t, ContentHash(nil), 64)
}
