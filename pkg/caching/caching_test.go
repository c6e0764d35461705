package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "snapshots"), time.Hour)
	require.NoError(t, err)

	key := Key("http", "https://example.com/login")
	_, ok := c.Get(key)
	assert.False(t, ok)

	require.NoError(t, c.Set(key, []byte("<html></html>")))
	entry, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "<html></html>", string(entry.Data))
	assert.WithinDuration(t, time.Now(), entry.StoredAt, time.Minute)
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	require.NoError(t, err)

	key := Key("http", "https://example.com/")
	require.NoError(t, c.Set(key, []byte("x")))
	old := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(filepath.Join(dir, key), old, old))

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestKeySeparatesParts(t *testing.T) {
	assert.NotEqual(t, Key("http", "https://a"), Key("browser", "https://a"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Len(t, Key("x"), 64)
}
