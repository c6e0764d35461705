package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtnitsch/page-signals/pkg/caching"
	"github.com/dtnitsch/page-signals/pkg/fetcher"
)

// HTTPProvider fetches the raw server HTML. Client-side rendering is not run,
// so geometry is estimated later. A non-nil cache is consulted first.
type HTTPProvider struct {
	Fetcher *fetcher.Fetcher
	Cache   *caching.Cache
	Logger  *slog.Logger
}

func (p *HTTPProvider) Capture(ctx context.Context, target string) (*Snapshot, error) {
	key := caching.Key(string(SourceHTTP), target)
	if p.Cache != nil {
		if entry, ok := p.Cache.Get(key); ok {
			p.log().Debug("snapshot cache hit", "url", target)
			return &Snapshot{URL: target, HTML: entry.Data, Source: SourceHTTP, CapturedAt: entry.StoredAt}, nil
		}
	}

	resp, err := p.Fetcher.Get(ctx, target)
	if err != nil {
		return nil, err
	}
	if p.Cache != nil {
		if err := p.Cache.Set(key, resp.Body); err != nil {
			p.log().Warn("failed to cache snapshot", "url", target, "error", err)
		}
	}
	return &Snapshot{
		URL:        resp.FinalURL,
		HTML:       resp.Body,
		Source:     SourceHTTP,
		CapturedAt: time.Now().UTC(),
	}, nil
}

func (p *HTTPProvider) log() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
