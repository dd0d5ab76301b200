package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/export"
	"github.com/yohoo/startpage/internal/transform"
)

func newTransformCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transform <backup.json>",
		Short: "Transform a flat backup-links file into the default-links format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newCommandLogger()
			defer func() { _ = log.Sync() }()

			data, err := os.ReadFile(args[0])
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("backup file not found: %s", args[0])
				}
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			var backup transform.BackupData
			if err := json.Unmarshal(data, &backup); err != nil {
				return fmt.Errorf("failed to parse backup file: %w", err)
			}

			result := transform.Transform(backup, time.Now(), log)

			if err := export.New(log).WriteJSON(output, result); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sections: %d\n", result.Metadata.SectionCount)
			fmt.Fprintf(out, "Links: %d\n", result.Metadata.LinkCount)
			fmt.Fprintf(out, "Columns: %d\n", result.Metadata.Columns)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default-links.json", "output file path")

	return cmd
}
