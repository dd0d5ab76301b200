package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/export"
)

func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <bookmarks.json> <history.json>",
		Short: "Merge bookmark and history exports, bookmarks taking precedence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newCommandLogger()
			defer func() { _ = log.Sync() }()

			bookmarkRecords, err := export.ReadBookmarks(args[0])
			if err != nil {
				return err
			}
			historyLinks, err := export.ReadLinks(args[1])
			if err != nil {
				return err
			}

			merged := export.Merge(bookmarkRecords, historyLinks)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n=== Merge Summary ===\n")
			fmt.Fprintf(out, "Bookmarks: %d\n", len(bookmarkRecords))
			fmt.Fprintf(out, "History items: %d\n", len(historyLinks))
			fmt.Fprintf(out, "Merged items: %d\n", len(merged))
			fmt.Fprintf(out, "Duplicates removed: %d\n",
				len(bookmarkRecords)+len(historyLinks)-len(merged))

			return export.New(log).WriteJSON(output, merged)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "merged_links.json", "output file path")

	return cmd
}
