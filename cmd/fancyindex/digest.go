package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nao1215/fancyindex/internal/config"
	"github.com/nao1215/fancyindex/internal/digest"
	fancylog "github.com/nao1215/fancyindex/internal/log"
	"github.com/nao1215/fancyindex/internal/report"
	"github.com/nao1215/fancyindex/internal/site"
)

// NewDigestCmd creates the digest command.
func NewDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest <page-id>",
		Short: "Print the digest of one page as JSON",
		Long: `Digest reads one page of the site mirror and prints what fancyindex
understood of it: name, display title, tags, redirect, links and tables.
The page id is the file name without extension.

Redirects are not resolved; that needs the whole site.

Examples:
  fancyindex digest --site ~/fancy/site Bob_Tucker`,
		Args: cobra.ExactArgs(1),
		RunE: runDigestCmd,
	}

	addSiteFlags(cmd)

	return cmd
}

// runDigestCmd executes the digest command.
func runDigestCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.SiteDir == "" {
		return fmt.Errorf("configuration error: %w", config.ErrNoSiteDir)
	}
	return digestPage(afero.NewOsFs(), cfg, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// digestPage loads and digests one page and writes it as indented JSON.
func digestPage(fs afero.Fs, cfg *config.Config, id string, stdout, stderr io.Writer) error {
	logger := fancylog.NewLogger(stderr, cfg.Verbose)

	markup, metadata, err := site.New(fs, cfg.SiteDir).LoadPage(id)
	if err != nil {
		return err
	}

	page, err := digest.New(digest.WithLogger(logger)).Digest(id, markup, metadata)
	if err != nil {
		return fmt.Errorf("digest %s: %w", id, err)
	}

	_, err = report.NewJSONWriter(stdout, report.WithPrettyPrint()).WriteValue(page)
	return err
}
