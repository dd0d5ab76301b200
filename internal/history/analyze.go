package history

import (
	"sort"
	"time"

	"github.com/yohoo/startpage/internal/domain"
)

// BuildLinks turns extracted visit records into the final scored links:
// recency and combined scores (rounded to 3 decimals at construction),
// category via the shared table, and a stable sort by combined score
// descending. Ties keep extraction order, which is windowed visit count
// descending. This ordering is authoritative for display and export.
func BuildLinks(records []domain.VisitRecord, categories domain.CategoryTable, now time.Time) []domain.ScoredLink {
	links := make([]domain.ScoredLink, 0, len(records))

	for _, record := range records {
		days := int(now.Sub(record.LastVisit).Hours() / 24)
		if days < 0 {
			// Store clock ahead of ours; treat as visited today.
			days = 0
		}

		recency := domain.RecencyScore(days, domain.DefaultDecay)
		combined := domain.CombinedScore(record.VisitCount, recency)

		title := record.Title
		if title == "" {
			title = record.Domain
		}

		links = append(links, domain.ScoredLink{
			URL:             record.URL,
			Title:           title,
			Domain:          record.Domain,
			VisitCount:      record.VisitCount,
			TotalVisitCount: record.TotalVisitCount,
			LastVisit:       record.LastVisit.Format(time.RFC3339),
			DaysSinceVisit:  days,
			RecencyScore:    domain.Round3(recency),
			CombinedScore:   domain.Round3(combined),
			Category:        categories.Categorize(record.URL, title),
		})
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CombinedScore > links[j].CombinedScore
	})

	return links
}
