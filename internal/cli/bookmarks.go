package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/bookmarks"
	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/export"
)

func newBookmarksCmd() *cobra.Command {
	var (
		output       string
		format       string
		categoryFile string
		maxAge       int
	)

	cmd := &cobra.Command{
		Use:   "bookmarks <export.html>",
		Short: "Parse an HTML bookmark export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newCommandLogger()
			defer func() { _ = log.Sync() }()

			if err := validateFormat(format); err != nil {
				return err
			}

			categories, err := domain.LoadCategories(categoryFile)
			if err != nil {
				return err
			}

			parser := bookmarks.NewParser(categories)
			parser.MaxAgeDays = maxAge

			records, err := parser.ParseFile(args[0])
			if err != nil {
				return err
			}

			printBookmarkSummary(cmd.OutOrStdout(), records)

			if output == "" {
				return nil
			}
			exporter := export.New(log)
			if format == "csv" {
				return exporter.WriteBookmarksCSV(output, records)
			}
			return exporter.WriteJSON(output, records)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json or csv)")
	cmd.Flags().StringVar(&categoryFile, "categories", "", "optional category table override (YAML)")
	cmd.Flags().IntVarP(&maxAge, "max-age", "m", bookmarks.DefaultMaxAgeDays, "maximum bookmark age in days")

	return cmd
}

func printBookmarkSummary(w io.Writer, records []domain.BookmarkRecord) {
	fmt.Fprintf(w, "\n=== Bookmark Summary ===\n")
	fmt.Fprintf(w, "Total bookmarks: %d\n", len(records))
	if len(records) == 0 {
		return
	}

	byCategory := make(map[string]int)
	for _, r := range records {
		byCategory[r.Category]++
	}
	fmt.Fprintf(w, "\nBookmarks by category:\n")
	for _, category := range categoryNamesByCount(byCategory) {
		fmt.Fprintf(w, "  %s: %d\n", category, byCategory[category])
	}
}
