package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

var (
	// ErrFetchFailed wraps transport and HTTP status failures.
	ErrFetchFailed = errors.New("failed to fetch job posting")
	// ErrNoContent is returned when a page yields no usable text.
	ErrNoContent = errors.New("job posting has no readable content")
)

// URLOptions controls how a posting is fetched.
type URLOptions struct {
	// UseBrowser enables headless rendering when the HTTP fetch yields too little text.
	UseBrowser bool
	// Cache, when set, serves repeat fetches of the same URL.
	Cache *fetch.Cache
	// Fetch overrides the HTTP options when Cache is nil.
	Fetch *fetch.Options
	// Render replaces fetch.RenderDefault.
	Render func(ctx context.Context, url string) (string, error)
}

// JobDescriptionFromURL fetches a job posting and returns its cleaned text.
func JobDescriptionFromURL(ctx context.Context, raw string, opts URLOptions) (string, *Metadata, error) {
	if err := fetch.ValidateURL(raw); err != nil {
		return "", nil, err
	}

	board := fetch.DetectBoard(raw)
	log := logger.Ctx(ctx).With().Str("url", raw).Str("board", string(board)).Logger()

	var page *fetch.Page
	var fromCache bool
	var err error
	if opts.Cache != nil {
		page, fromCache, err = opts.Cache.Get(ctx, raw)
	} else {
		page, err = fetch.URL(ctx, raw, opts.Fetch)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	content := fetch.ContentSelectors(board)
	noise := fetch.NoiseSelectors(board)

	text, err := fetch.MainText(page.HTML, content, noise...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrNoContent, err)
	}
	log.Debug().Int("chars", len(text)).Bool("cached", fromCache).Msg("extracted posting text")

	rendered := false
	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		render := opts.Render
		if render == nil {
			render = fetch.RenderDefault
		}
		html, renderErr := render(ctx, raw)
		if renderErr != nil {
			log.Warn().Err(renderErr).Msg("browser rendering failed, keeping HTTP content")
		} else if browserText, extractErr := fetch.MainText(html, content, noise...); extractErr == nil {
			text = browserText
			rendered = true
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, ErrNoContent
	}

	meta := NewMetadata(cleaned, raw)
	meta.Board = string(board)
	meta.Title = fetch.Title(page.HTML)
	meta.Rendered = rendered
	meta.FromCache = fromCache
	return cleaned, meta, nil
}
