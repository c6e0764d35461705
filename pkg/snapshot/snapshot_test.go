package snapshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/page-signals/pkg/caching"
	"github.com/dtnitsch/page-signals/pkg/fetcher"
)

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.html")
	boxed := filepath.Join(dir, "boxed.html")
	require.NoError(t, os.WriteFile(plain, []byte(`<form><input type="password"></form>`), 0644))
	require.NoError(t, os.WriteFile(boxed, []byte(`<input data-ps-box="0,0,10,10">`), 0644))

	snap, err := FileProvider{}.Capture(context.Background(), plain)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, snap.Source)
	assert.Contains(t, snap.URL, "file://")
	assert.False(t, snap.Geometry)

	doc, err := snap.Document()
	require.NoError(t, err)
	assert.Len(t, doc.SelectByTag("input"), 1)

	snap, err = FileProvider{PageURL: "https://example.com/login"}.Capture(context.Background(), boxed)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/login", snap.URL)
	assert.True(t, snap.Geometry)

	_, err = FileProvider{}.Capture(context.Background(), filepath.Join(dir, "missing.html"))
	assert.Error(t, err)
}

func TestHTTPProviderUsesCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><button>Log in</button></body></html>`))
	}))
	defer server.Close()

	cache, err := caching.NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	p := &HTTPProvider{Fetcher: fetcher.NewFetcher(5 * time.Second), Cache: cache}

	first, err := p.Capture(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := p.Capture(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, SourceHTTP, second.Source)
	assert.False(t, second.Geometry)
}

func TestHTTPProviderError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	p := &HTTPProvider{Fetcher: fetcher.NewFetcher(5 * time.Second)}
	_, err := p.Capture(context.Background(), server.URL)
	assert.ErrorContains(t, err, "404")
}
