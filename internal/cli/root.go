// Package cli defines the startpage command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/logger"
)

var (
	flagVerbose bool
	flagDebug   bool
	flagQuiet   bool
)

// Execute runs the root command. The caller turns a returned error into a
// non-zero exit code.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "startpage",
		Short: "Personal start page toolkit",
		Long: `startpage analyzes browser history, parses bookmark exports, scores and
categorizes links, merges the results, and serves a small local proxy
that fetches page titles for the start page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output (info level)")
	pf.BoolVar(&flagDebug, "debug", false, "debug output")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only show errors")
	root.MarkFlagsMutuallyExclusive("verbose", "debug", "quiet")

	root.AddCommand(
		newAnalyzeCmd(),
		newBookmarksCmd(),
		newMergeCmd(),
		newExportCategoriesCmd(),
		newTransformCmd(),
		newServeCmd(),
	)

	return root
}

// logLevel maps the verbosity flag group to a zap level.
// Default shows warnings only.
func logLevel() string {
	switch {
	case flagDebug:
		return "debug"
	case flagVerbose:
		return "info"
	case flagQuiet:
		return "error"
	default:
		return "warn"
	}
}

func newCommandLogger() logger.Logger {
	return logger.New(logLevel(), true)
}

func validateFormat(format string) error {
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid format %q (use json or csv)", format)
	}
	return nil
}
