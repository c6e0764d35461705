package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache is a file-per-entry snapshot cache with a TTL. Entries older than the
// TTL are misses; a zero TTL disables reads.
type Cache struct {
	path string
	ttl  time.Duration
}

// Entry is one cached snapshot.
type Entry struct {
	Data     []byte
	StoredAt time.Time
}

// NewCache creates the cache directory if it does not exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Key derives a file name from the parts identifying a snapshot, such as the
// provider and the URL.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("%x", hash)
}

// Get returns the entry for key if it exists and has not expired.
func (c *Cache) Get(key string) (Entry, bool) {
	filePath := filepath.Join(c.path, key)

	info, err := os.Stat(filePath)
	if err != nil {
		return Entry{}, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return Entry{}, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Data: data, StoredAt: info.ModTime().UTC()}, true
}

// Set stores data under key, replacing any previous entry.
func (c *Cache) Set(key string, data []byte) error {
	filePath := filepath.Join(c.path, key)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// TTL returns how long entries stay fresh.
func (c *Cache) TTL() time.Duration { return c.ttl }
