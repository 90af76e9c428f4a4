package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/fancyindex/internal/digest"
	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/site"
)

// PageSource lists and loads the raw files of a site mirror.
// *site.Site satisfies it.
type PageSource interface {
	ListPages() ([]string, error)
	LoadPage(id string) (markup, metadata []byte, err error)
}

// BatchDigester digests many pages concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
type BatchDigester struct {
	// source supplies the raw page files.
	source PageSource

	// digester turns raw files into pages. It holds no per-page state.
	digester *digest.Digester

	// concurrency is the maximum number of pages digested at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchDigester.
type BatchOption func(*BatchDigester)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchDigester) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent digestions.
// Default is 1 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchDigester) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchDigester creates a new BatchDigester.
func NewBatchDigester(source PageSource, digester *digest.Digester, opts ...BatchOption) *BatchDigester {
	bd := &BatchDigester{
		source:      source,
		digester:    digester,
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(bd)
	}

	if bd.logger == nil {
		bd.logger = slog.Default()
	}

	return bd
}

// Process digests the pages with the given ids. A page whose files are
// missing or empty is skipped and counted; it never fails the batch. The
// returned pages are sorted by name.
//
// The error return is non-nil only when ctx is cancelled or a file could
// not be read for a reason other than its absence.
func (bd *BatchDigester) Process(ctx context.Context, ids []string) ([]*model.Page, int, error) {
	bd.logger.Info("starting page digestion",
		"total_pages", len(ids),
		"concurrency", bd.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice so every goroutine owns one slot.
	results := make([]*model.Page, len(ids))
	var skipped atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bd.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			markup, metadata, err := bd.source.LoadPage(id)
			if err != nil {
				if errors.Is(err, site.ErrPageNotFound) {
					bd.logger.Warn("page skipped", "page", id, "error", err)
					skipped.Add(1)
					return nil
				}
				return err
			}

			page, err := bd.digester.Digest(id, markup, metadata)
			if err != nil {
				bd.logger.Warn("page skipped", "page", id, "error", err)
				skipped.Add(1)
				return nil
			}
			results[i] = page
			return nil
		})
	}

	err := g.Wait()

	pages := slices.DeleteFunc(results, func(p *model.Page) bool { return p == nil })
	slices.SortStableFunc(pages, func(a, b *model.Page) int {
		return strings.Compare(a.Name, b.Name)
	})

	bd.logger.Info("page digestion complete",
		"pages", len(pages),
		"skipped", skipped.Load(),
		"elapsed", time.Since(startTime),
	)

	return pages, int(skipped.Load()), err
}
