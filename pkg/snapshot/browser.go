package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/dtnitsch/page-signals/pkg/dom"
)

// DefaultSettle is how long the page may keep rendering after load before the
// snapshot is taken.
const DefaultSettle = 2 * time.Second

// annotateScript records each element's bounding box and computed visibility
// as reserved attributes so the serialized DOM keeps the rendered geometry.
var annotateScript = fmt.Sprintf(`(() => {
  const sx = window.scrollX, sy = window.scrollY;
  let n = 0;
  for (const el of document.body ? document.body.querySelectorAll('*') : []) {
    const r = el.getBoundingClientRect();
    el.setAttribute(%[1]q, [r.left + sx, r.top + sy, r.width, r.height].map(v => Math.round(v)).join(','));
    const cs = getComputedStyle(el);
    if (cs.display === 'none' || cs.visibility === 'hidden' || cs.visibility === 'collapse' || cs.opacity === '0') {
      el.setAttribute(%[2]q, '1');
    }
    n++;
  }
  return n;
})()`, dom.BoxAttr, dom.HiddenAttr)

// BrowserProvider renders pages in headless Chrome and captures them with
// geometry. Chrome or Chromium must be installed.
type BrowserProvider struct {
	Timeout time.Duration
	Settle  time.Duration
	Logger  *slog.Logger
}

func (p *BrowserProvider) Capture(ctx context.Context, target string) (*Snapshot, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	settle := p.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(int(dom.ViewportWidth), 900),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var (
		html      string
		finalURL  string
		annotated int
	)
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
		chromedp.Location(&finalURL),
		chromedp.Evaluate(annotateScript, &annotated),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("browser capture of %s failed: %w", target, err)
	}

	if p.Logger != nil {
		p.Logger.Debug("browser snapshot captured", "url", finalURL, "elements", annotated, "bytes", len(html))
	}
	return &Snapshot{
		URL:        finalURL,
		HTML:       []byte(html),
		Source:     SourceBrowser,
		CapturedAt: time.Now().UTC(),
		Geometry:   true,
	}, nil
}
