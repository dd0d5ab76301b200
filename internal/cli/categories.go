package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/export"
)

func newExportCategoriesCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export-categories <data.json>",
		Short: "Split a JSON export into one file per category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newCommandLogger()
			defer func() { _ = log.Sync() }()

			records, err := export.ReadMerged(args[0])
			if err != nil {
				return err
			}

			if err := export.New(log).WriteByCategory(outputDir, records); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(records), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "categories", "directory for per-category files")

	return cmd
}
