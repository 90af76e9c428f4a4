package digest

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/wikitext"
)

// ErrMissingSource is returned when a page's markup or metadata is absent.
var ErrMissingSource = errors.New("page source missing")

// Digester builds Page records from raw markup and metadata.
// It holds no per-page state and is safe for concurrent use.
type Digester struct {
	logger *slog.Logger
}

// Option configures a Digester.
type Option func(*Digester)

// WithLogger sets the logger used for digestion diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Digester) {
		d.logger = logger
	}
}

// New creates a Digester.
func New(opts ...Option) *Digester {
	d := &Digester{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Digest builds the Page for id from its markup and metadata blobs.
//
// A nil or empty blob means the backing file is missing and ErrMissingSource
// is returned. Everything else degrades to a page with warnings.
func (d *Digester) Digest(id string, markup, metadata []byte) (*model.Page, error) {
	if len(markup) == 0 {
		return nil, fmt.Errorf("%s: markup: %w", id, ErrMissingSource)
	}
	if len(metadata) == 0 {
		return nil, fmt.Errorf("%s: metadata: %w", id, ErrMissingSource)
	}

	page := &model.Page{ID: id}
	md, err := decodeMetadata(metadata)
	if err != nil {
		d.logger.Warn("malformed metadata", "page", id, "error", err)
		page.Warn(err.Error())
	}
	page.Metadata = md
	page.Name = wikitext.CanonicalPageName(md.Title)
	if page.Name == "" {
		page.Name = wikitext.PageNameFromID(id)
	}

	src := string(markup)
	if title, ok, rest := wikitext.ExtractDisplayTitle(src); ok {
		page.DisplayTitle = model.Ptr(title)
		src = rest
	}

	cats, src := wikitext.ExtractCategories(src)
	for _, c := range cats {
		page.AddTag(c)
	}
	for _, c := range metadataCategories(md) {
		page.AddTag(c)
	}
	page.Source = src

	if target, ok := wikitext.ExtractRedirect(src); ok {
		page.Redirect = model.Ptr(target)
		d.logger.Debug("redirect found", "page", page.Name, "target", target)
		return page, nil
	}
	if strings.EqualFold(md.IsRedirectPage, "true") {
		d.warn(page, "metadata marks page as redirect but no redirect directive was found")
	}

	body := wikitext.StripLiteralBlocks(src)
	page.Links = d.collectLinks(page, body)
	page.Tables = wikitext.ParseTables(body)

	d.logger.Debug("page digested",
		"page", page.Name,
		"tags", len(page.Tags),
		"links", len(page.Links),
		"tables", len(page.Tables))
	return page, nil
}

// collectLinks extracts the distinct links of body in first-seen order.
func (d *Digester) collectLinks(page *model.Page, body string) []model.Link {
	raw := wikitext.ExtractLinks(body)
	seen := make(map[model.Link]struct{}, len(raw))
	links := make([]model.Link, 0, len(raw))
	for _, r := range raw {
		if r.Segments > 2 {
			d.warn(page, fmt.Sprintf("link [[%s|%s|...]] has %d segments; extra segments ignored",
				r.Target, r.Display, r.Segments))
		}
		l := model.NewLink(r.Target, r.Display, page.Name)
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		links = append(links, l)
	}
	return links
}

func (d *Digester) warn(page *model.Page, msg string) {
	d.logger.Warn(msg, "page", page.Name)
	page.Warn(msg)
}
