// Package snapshot provides page snapshots for extraction: saved files, plain
// HTTP fetches and headless Chrome captures carrying rendered geometry.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/page-signals/pkg/dom"
)

// Source names where a snapshot came from.
type Source string

const (
	SourceFile    Source = "file"
	SourceHTTP    Source = "http"
	SourceBrowser Source = "browser"
)

// Snapshot is the serialized DOM of one page at one moment.
type Snapshot struct {
	URL        string
	HTML       []byte
	Source     Source
	CapturedAt time.Time
	// Geometry is true when the HTML carries captured boxes and visibility.
	Geometry bool
}

// Document parses the snapshot for extraction.
func (s *Snapshot) Document() (*dom.Document, error) {
	doc, err := dom.Parse(bytes.NewReader(s.HTML), s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot of %s: %w", s.URL, err)
	}
	return doc, nil
}

// Provider captures a snapshot of the page at target.
type Provider interface {
	Capture(ctx context.Context, target string) (*Snapshot, error)
}

// FileProvider reads snapshots saved to disk. The page URL defaults to a
// file URL of the path when PageURL is empty.
type FileProvider struct {
	PageURL string
}

func (p FileProvider) Capture(ctx context.Context, path string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	pageURL := p.PageURL
	if pageURL == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		pageURL = "file://" + filepath.ToSlash(abs)
	}
	return &Snapshot{
		URL:        pageURL,
		HTML:       data,
		Source:     SourceFile,
		CapturedAt: time.Now().UTC(),
		Geometry:   bytes.Contains(data, []byte(dom.BoxAttr)),
	}, nil
}
