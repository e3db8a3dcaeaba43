package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

// MinTextLength is the shortest extracted posting accepted from a plain HTTP fetch.
// Shorter text usually means the page renders client-side.
const MinTextLength = 500

// NeedsBrowser reports whether extracted text is too short to be a real posting.
func NeedsBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < MinTextLength
}

// Render loads a page in headless Chrome and returns the rendered HTML.
// Chrome or Chromium must be installed.
func Render(ctx context.Context, url string, timeout time.Duration) (string, error) {
	log := logger.Ctx(ctx)
	log.Debug().Str("url", url).Msg("rendering page in headless browser")

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}

	log.Debug().Str("url", url).Int("bytes", len(html)).Msg("rendered page")
	return html, nil
}

// RenderDefault renders with DefaultTimeout.
func RenderDefault(ctx context.Context, url string) (string, error) {
	html, err := Render(ctx, url, DefaultTimeout)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return html, nil
}
