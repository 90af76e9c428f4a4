package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for fancyindex.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fancyindex",
		Short: "Index people and conventions of a fan wiki mirror",
		Long: `fancyindex reads a local mirror of a MediaWiki fan encyclopedia and derives
cross-reference reports from it: the pages referring to each person, the
redirects to each page, a list of people's names sorted by last name and a
timeline of convention instances with dates, locations and status.

The mirror holds two files per page: <id>.txt with the page markup and
<id>.xml with its metadata.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewDigestCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
