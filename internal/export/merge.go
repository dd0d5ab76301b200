package export

import (
	"sort"

	"github.com/yohoo/startpage/internal/domain"
)

// Merge combines a bookmark export with a history export. Bookmarks come
// first, unchanged; history entries whose URL is not already bookmarked are
// appended tagged Source "history" with their combined score. The merged
// list is stably sorted by score descending; pure bookmarks carry no score
// and sort as 0.
//
// Deduplication is exact URL string equality. URLs differing only by a
// trailing slash, scheme case or query-parameter order are distinct
// records; known limitation, kept deliberately.
func Merge(bookmarks []domain.BookmarkRecord, history []domain.ScoredLink) []domain.MergedRecord {
	seen := make(map[string]struct{}, len(bookmarks))
	merged := make([]domain.MergedRecord, 0, len(bookmarks)+len(history))

	for _, b := range bookmarks {
		seen[b.URL] = struct{}{}
		merged = append(merged, domain.MergedRecord{
			Title:     b.Title,
			URL:       b.URL,
			Domain:    b.Domain,
			Category:  b.Category,
			AddedDate: b.AddedDate,
			Favicon:   b.Favicon,
		})
	}

	for _, h := range history {
		if _, ok := seen[h.URL]; ok {
			continue
		}
		category := h.Category
		if category == "" {
			category = domain.DefaultCategory
		}
		merged = append(merged, domain.MergedRecord{
			Title:      h.Title,
			URL:        h.URL,
			Domain:     h.Domain,
			Category:   category,
			Source:     "history",
			VisitCount: h.VisitCount,
			Score:      h.CombinedScore,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	return merged
}
