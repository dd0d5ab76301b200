package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/logger"
)

// Canonical column orders. Each record type has its own fixed header.
var (
	linkColumns = []string{
		"title", "url", "domain", "visit_count", "total_visit_count",
		"last_visit", "days_since_visit", "recency_score", "combined_score",
	}
	bookmarkColumns = []string{
		"title", "url", "domain", "category", "added_date", "favicon",
	}
)

// WriteLinksCSV writes scored links in the canonical column order.
// An empty record list is a no-op that logs a warning instead of leaving a
// header-only file behind. Write errors propagate wrapped in ErrExportIO.
func (e *Exporter) WriteLinksCSV(path string, links []domain.ScoredLink) error {
	if len(links) == 0 {
		e.log.Warn("no records to export", logger.String("path", path))
		return nil
	}

	rows := make([][]string, 0, len(links))
	for _, l := range links {
		rows = append(rows, []string{
			l.Title,
			l.URL,
			l.Domain,
			strconv.Itoa(l.VisitCount),
			strconv.Itoa(l.TotalVisitCount),
			l.LastVisit,
			strconv.Itoa(l.DaysSinceVisit),
			strconv.FormatFloat(l.RecencyScore, 'g', -1, 64),
			strconv.FormatFloat(l.CombinedScore, 'g', -1, 64),
		})
	}

	return e.writeCSV(path, linkColumns, rows)
}

// WriteBookmarksCSV writes bookmark records in the canonical column order.
// Same empty-list and error semantics as WriteLinksCSV.
func (e *Exporter) WriteBookmarksCSV(path string, records []domain.BookmarkRecord) error {
	if len(records) == 0 {
		e.log.Warn("no records to export", logger.String("path", path))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Title, r.URL, r.Domain, r.Category, r.AddedDate, r.Favicon})
	}

	return e.writeCSV(path, bookmarkColumns, rows)
}

func (e *Exporter) writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}

	e.log.Info("exported records",
		logger.String("path", path),
		logger.Int("rows", len(rows)))
	return nil
}
