package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/export"
	"github.com/yohoo/startpage/internal/history"
	"github.com/yohoo/startpage/internal/logger"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		historyPath  string
		output       string
		format       string
		categoryFile string
		days         int
		minVisits    int
		top          int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze browser history and surface frequently visited URLs",
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

			if historyPath == "" {
				historyPath, err = history.DefaultStorePath()
				if err != nil {
					return err
				}
				log.Info("auto-detected history store", logger.String("path", historyPath))
			}

			// The browser may hold the canonical store locked; always work
			// from a private snapshot and remove it when done.
			snapshot, cleanup, err := history.Snapshot(historyPath)
			if err != nil {
				return err
			}
			defer cleanup()

			extractor := history.NewExtractor(log)
			extractor.WindowDays = days
			extractor.MinVisits = minVisits

			records, err := extractor.Extract(cmd.Context(), snapshot)
			if err != nil {
				return err
			}

			links := history.BuildLinks(records, categories, time.Now())
			printAnalysisSummary(cmd.OutOrStdout(), links, top)

			if output == "" {
				return nil
			}
			exporter := export.New(log)
			if format == "csv" {
				return exporter.WriteLinksCSV(output, links)
			}
			return exporter.WriteJSON(output, links)
		},
	}

	cmd.Flags().StringVarP(&historyPath, "history-path", "p", "", "path to the history database (auto-detected if empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json or csv)")
	cmd.Flags().StringVar(&categoryFile, "categories", "", "optional category table override (YAML)")
	cmd.Flags().IntVarP(&days, "days", "d", history.DefaultWindowDays, "number of days to analyze")
	cmd.Flags().IntVarP(&minVisits, "min-visits", "m", history.DefaultMinVisits, "minimum visit count")
	cmd.Flags().IntVarP(&top, "top", "t", 20, "number of top URLs to display")

	return cmd
}

func printAnalysisSummary(w io.Writer, links []domain.ScoredLink, top int) {
	fmt.Fprintf(w, "\n=== History Analysis ===\n")
	fmt.Fprintf(w, "Total URLs analyzed: %d\n", len(links))
	if len(links) == 0 {
		return
	}

	totalVisits := 0
	byCategory := make(map[string]int)
	for _, l := range links {
		totalVisits += l.VisitCount
		byCategory[l.Category]++
	}
	fmt.Fprintf(w, "Total visits: %d\n", totalVisits)
	fmt.Fprintf(w, "Average visits per URL: %.1f\n", float64(totalVisits)/float64(len(links)))

	fmt.Fprintf(w, "\nURLs by category:\n")
	for _, category := range categoryNamesByCount(byCategory) {
		fmt.Fprintf(w, "  %s: %d\n", category, byCategory[category])
	}

	if top < 0 {
		top = 0
	}
	if top > len(links) {
		top = len(links)
	}
	fmt.Fprintf(w, "\n=== Top %d URLs by Combined Score ===\n", top)
	for i, l := range links[:top] {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, truncate(l.Title, 60))
		fmt.Fprintf(w, "   URL: %s\n", truncate(l.URL, 80))
		fmt.Fprintf(w, "   Visits: %d | Last: %d days ago\n", l.VisitCount, l.DaysSinceVisit)
		fmt.Fprintf(w, "   Score: %g (recency: %g)\n", l.CombinedScore, l.RecencyScore)
		fmt.Fprintf(w, "   Category: %s\n", l.Category)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
