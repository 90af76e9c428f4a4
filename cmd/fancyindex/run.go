package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nao1215/fancyindex/internal/config"
	fancylog "github.com/nao1215/fancyindex/internal/log"
	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/pipeline"
	"github.com/nao1215/fancyindex/internal/report"
	"github.com/nao1215/fancyindex/internal/site"
)

// errorLogName is the file, in the output directory, that receives the
// error-level diagnostics of a run.
const errorLogName = "Errors.txt"

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build every report from a site mirror",
		Long: `Run digests every page of the site mirror and writes the reports:

  Referring pages                 person -> pages linking to them
  Redirects                       page -> redirects pointing at it
  Redirects with missing target   redirects whose target does not exist
  Peoples names                   display names sorted by last name
  Convention timeline             dated convention instances per year
  Location discrepancies          series table vs. convention page
  Date oddities                   date cells that could not be used

Problems with single pages or table rows never stop the run. They are
logged, and error-level diagnostics are also written to Errors.txt in the
output directory.

Environment variables FANCYINDEX_SITE_DIR, FANCYINDEX_OUTPUT_DIR,
FANCYINDEX_FORMAT and FANCYINDEX_JOBS are used when the matching flag is
not given.

Examples:
  # Build text reports into the default directory
  fancyindex run --site ~/fancy/site

  # Markdown reports, four pages digested at a time
  fancyindex run -s ~/fancy/site -o ./reports -f markdown -j 4`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	addSiteFlags(cmd)
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir(),
		"Directory the reports are written to")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Report format: text, markdown or json")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of pages digested concurrently")

	return cmd
}

// addSiteFlags adds the flags shared by every command that reads the mirror.
func addSiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("site", "s", "",
		"Directory holding the site mirror (<id>.txt and <id>.xml files)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fancyindex in current or home directory)")
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return runIndex(ctx, cfg, afero.NewOsFs(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from flags, environment and the
// configuration file, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.SiteDir, err = cmd.Flags().GetString("site"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("output"); f != nil {
		cfg.OutputDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("format"); f != nil {
		cfg.Format = f.Value.String()
	}
	if cmd.Flags().Lookup("jobs") != nil {
		if cfg.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg, cmd.Flags().Changed); err != nil {
		return nil, err
	}

	// An explicitly given file must exist; otherwise a missing file means
	// the built-in settings.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		if cfg.File, err = config.LoadConfigFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runIndex builds the index and writes the reports and the run summary.
func runIndex(ctx context.Context, cfg *config.Config, fs afero.Fs, stdout, stderr io.Writer) error {
	started := time.Now()

	if err := fs.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	errPath := filepath.Join(cfg.OutputDir, errorLogName)
	errFile, err := fs.Create(errPath)
	if err != nil {
		return fmt.Errorf("create error log: %w", err)
	}
	defer errFile.Close()

	logger, diag := fancylog.NewRunLogger(stderr, errFile, cfg.Verbose)
	slog.SetDefault(logger)

	index := model.NewIndex(uuid.NewString(), started)
	logger.Info("starting run",
		"run", index.RunID,
		"site", cfg.SiteDir,
		"output", cfg.OutputDir,
		"format", cfg.Format,
		"jobs", cfg.Jobs,
	)

	reports := pipeline.NewReportStep(
		report.NewDirSink(fs, cfg.OutputDir, report.Format(cfg.Format), getVersion()),
		logger,
	)
	p := pipeline.New(pipeline.WithLogger(logger), pipeline.WithContinueOnError(true))
	p.AddSteps(
		pipeline.NewDigestStep(
			site.New(fs, cfg.SiteDir, site.WithExcludePrefixes(cfg.File.ExcludePrefixes()...)),
			pipeline.WithJobs(cfg.Jobs),
			pipeline.WithDigestLogger(logger),
		),
		pipeline.NewRedirectStep(logger),
		pipeline.NewPeopleStep(logger),
		pipeline.NewConventionStep(
			pipeline.WithTables(cfg.File.Tables()),
			pipeline.WithMaxDays(cfg.File.MaxDays()),
			pipeline.WithConventionLogger(logger),
		),
		reports,
	)

	runErr := p.Execute(ctx, index)

	summary := report.NewSummary(index, diag.Counts().Warnings(), diag.Counts().Errors())
	summary.Elapsed = time.Since(started)
	summary.Paths = reports.Paths()
	if diag.Counts().Errors() > 0 {
		summary.Paths = append(summary.Paths, errPath)
	}
	if err := report.WriteSummary(stdout, summary); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}
