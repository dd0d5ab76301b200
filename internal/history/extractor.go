// Package history extracts and scores visit records from a Chrome
// history database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/logger"
	"github.com/yohoo/startpage/internal/utils"
)

const (
	// DefaultWindowDays is the trailing span within which visits count.
	DefaultWindowDays = 90

	// DefaultMinVisits is the windowed visit-count floor for inclusion.
	DefaultMinVisits = 3
)

// visitQuery aggregates per-URL stats inside the window: windowed visit
// count, most recent visit time and the store's lifetime counter.
const visitQuery = `
SELECT
    urls.url,
    urls.title,
    COUNT(visits.id) AS visit_count,
    MAX(visits.visit_time) AS last_visit_time,
    urls.visit_count AS total_visit_count
FROM urls
JOIN visits ON urls.id = visits.url
WHERE visits.visit_time > ?
GROUP BY urls.url
HAVING visit_count >= ?
ORDER BY visit_count DESC`

// Extractor reads qualifying URLs from a history store snapshot.
type Extractor struct {
	WindowDays int
	MinVisits  int

	// Now is the clock used for the cutoff bound; defaults to time.Now.
	Now func() time.Time

	log logger.Logger
}

// NewExtractor builds an Extractor with the default window and floor.
func NewExtractor(log logger.Logger) *Extractor {
	return &Extractor{
		WindowDays: DefaultWindowDays,
		MinVisits:  DefaultMinVisits,
		Now:        time.Now,
		log:        log,
	}
}

// Extract queries the store at dbPath for all URLs with at least MinVisits
// visits inside the trailing WindowDays window, drops noise via the URL
// filter and attaches the URL authority as Domain. Read-only; the caller
// owns snapshot acquisition and cleanup.
func (e *Extractor) Extract(ctx context.Context, dbPath string) ([]domain.VisitRecord, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, dbPath)
	}

	now := e.Now()
	cutoff := toChromeTime(now.AddDate(0, 0, -e.WindowDays))

	e.log.Info("analyzing history",
		logger.String("store", dbPath),
		logger.Int("window_days", e.WindowDays),
		logger.Int("min_visits", e.MinVisits))

	db, err := sql.Open("sqlite", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	defer utils.Close(db)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}

	rows, err := db.QueryContext(ctx, visitQuery, cutoff, e.MinVisits)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %s", domain.ErrStoreUnavailable, err)
	}
	defer utils.Close(rows)

	var records []domain.VisitRecord
	for rows.Next() {
		var (
			rawURL        string
			title         sql.NullString
			visitCount    int
			lastVisitTime int64
			totalVisits   int
		)
		if err := rows.Scan(&rawURL, &title, &visitCount, &lastVisitTime, &totalVisits); err != nil {
			return nil, fmt.Errorf("%w: scan failed: %s", domain.ErrStoreUnavailable, err)
		}

		if domain.ShouldExclude(rawURL) {
			continue
		}

		host := ""
		if parsed, err := url.Parse(rawURL); err == nil {
			host = parsed.Host
		}

		records = append(records, domain.VisitRecord{
			URL:             rawURL,
			Title:           title.String,
			VisitCount:      visitCount,
			TotalVisitCount: totalVisits,
			LastVisit:       fromChromeTime(lastVisitTime),
			Domain:          host,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}

	e.log.Info("extraction complete", logger.Int("records", len(records)))

	return records, nil
}
