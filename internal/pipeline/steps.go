package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/fancyindex/internal/convention"
	"github.com/nao1215/fancyindex/internal/digest"
	"github.com/nao1215/fancyindex/internal/locale"
	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/people"
	"github.com/nao1215/fancyindex/internal/redirect"
	"github.com/nao1215/fancyindex/internal/report"
)

// ErrNoPages is returned by the digest step when the site yields no page.
var ErrNoPages = errors.New("no pages digested")

// DigestStep lists the site and digests every page into the index.
type DigestStep struct {
	source PageSource
	jobs   int
	logger *slog.Logger
}

// DigestStepOption configures a DigestStep.
type DigestStepOption func(*DigestStep)

// WithJobs sets the number of pages digested concurrently.
func WithJobs(n int) DigestStepOption {
	return func(s *DigestStep) {
		s.jobs = n
	}
}

// WithDigestLogger sets a custom logger for the digest step.
func WithDigestLogger(logger *slog.Logger) DigestStepOption {
	return func(s *DigestStep) {
		s.logger = logger
	}
}

// NewDigestStep creates a digest step reading from source.
func NewDigestStep(source PageSource, opts ...DigestStepOption) *DigestStep {
	s := &DigestStep{
		source: source,
		jobs:   1,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *DigestStep) Name() string {
	return "digest"
}

// Do executes the digest step.
func (s *DigestStep) Do(ctx context.Context, index *model.Index) error {
	ids, err := s.source.ListPages()
	if err != nil {
		return err
	}

	bd := NewBatchDigester(
		s.source,
		digest.New(digest.WithLogger(s.logger)),
		WithConcurrency(s.jobs),
		WithBatchLogger(s.logger),
	)
	pages, skipped, err := bd.Process(ctx, ids)
	if err != nil {
		return err
	}

	index.Pages = pages
	index.Skipped = skipped
	if len(pages) == 0 {
		return fmt.Errorf("%w from %d file(s)", ErrNoPages, len(ids))
	}
	return nil
}

// RedirectStep resolves redirect chains and derives the redirect reports.
type RedirectStep struct {
	logger *slog.Logger
}

// NewRedirectStep creates a redirect step.
func NewRedirectStep(logger *slog.Logger) *RedirectStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedirectStep{logger: logger}
}

// Name returns the step name.
func (s *RedirectStep) Name() string {
	return "redirects"
}

// Do executes the redirect step.
func (s *RedirectStep) Do(_ context.Context, index *model.Index) error {
	res := redirect.New(redirect.WithLogger(s.logger)).ResolveAll(index.Pages)
	index.Redirects = res.Ultimate
	index.Cycles = res.Cycles
	index.InverseRedirects = redirect.Inverse(index.Pages)
	index.MissingTargets = redirect.MissingTargets(index.Pages, res.Ultimate)

	for _, name := range res.Cycles {
		s.logger.Error("redirect cycle", "page", name, "target", res.Ultimate[name])
	}
	for _, p := range index.Pages {
		if p.IsRedirect() != (p.UltimateRedirect != nil) {
			s.logger.Error("redirect and ultimate redirect disagree", "page", p.Name)
		}
	}
	return nil
}

// PeopleStep builds the referring-pages index and the people name list.
// It needs the redirect step to have run.
type PeopleStep struct {
	logger *slog.Logger
}

// NewPeopleStep creates a people step.
func NewPeopleStep(logger *slog.Logger) *PeopleStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &PeopleStep{logger: logger}
}

// Name returns the step name.
func (s *PeopleStep) Name() string {
	return "people"
}

// Do executes the people step.
func (s *PeopleStep) Do(_ context.Context, index *model.Index) error {
	index.People = people.New(people.WithLogger(s.logger)).BuildIndex(index.Pages, index.Redirects)
	index.PeopleNames = people.Names(index.Pages, redirect.SourcesByTarget(index.InverseRedirects))
	return nil
}

// ConventionStep extracts the convention timeline. The gazetteer is built
// from the digested pages, so it must run after the digest step.
type ConventionStep struct {
	tables  locale.Tables
	maxDays int
	logger  *slog.Logger
}

// ConventionStepOption configures a ConventionStep.
type ConventionStepOption func(*ConventionStep)

// WithTables sets the locale lookup tables.
func WithTables(t locale.Tables) ConventionStepOption {
	return func(s *ConventionStep) {
		s.tables = t
	}
}

// WithMaxDays sets the range length above which a date is an oddity.
func WithMaxDays(days int) ConventionStepOption {
	return func(s *ConventionStep) {
		s.maxDays = days
	}
}

// WithConventionLogger sets a custom logger for the convention step.
func WithConventionLogger(logger *slog.Logger) ConventionStepOption {
	return func(s *ConventionStep) {
		s.logger = logger
	}
}

// NewConventionStep creates a convention step.
func NewConventionStep(opts ...ConventionStepOption) *ConventionStep {
	s := &ConventionStep{
		tables:  locale.DefaultTables(),
		maxDays: convention.DefaultMaxDays,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ConventionStep) Name() string {
	return "conventions"
}

// Do executes the convention step.
func (s *ConventionStep) Do(_ context.Context, index *model.Index) error {
	gaz := locale.NewGazetteer(index.Pages, s.tables)
	s.logger.Debug("gazetteer built", "locales", gaz.Len())

	scanner := locale.NewScanner(gaz, locale.WithTables(s.tables), locale.WithLogger(s.logger))
	x := convention.New(scanner, convention.WithLogger(s.logger), convention.WithMaxDays(s.maxDays))
	res := x.Extract(index.Pages, index.Redirects)

	index.Conventions = res.Conventions
	index.Discrepancies = res.Discrepancies
	index.Oddities = res.Oddities
	return nil
}

// ReportStep writes every report through a DirSink.
type ReportStep struct {
	sink   *report.DirSink
	logger *slog.Logger
	paths  []string
}

// NewReportStep creates a report step writing to sink.
func NewReportStep(sink *report.DirSink, logger *slog.Logger) *ReportStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportStep{sink: sink, logger: logger}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "reports"
}

// Do executes the report step.
func (s *ReportStep) Do(_ context.Context, index *model.Index) error {
	paths, err := s.sink.EmitAll(index)
	s.paths = paths
	for _, p := range paths {
		s.logger.Info("report written", "path", p)
	}
	return err
}

// Paths returns the files written by the last Do.
func (s *ReportStep) Paths() []string {
	return s.paths
}
