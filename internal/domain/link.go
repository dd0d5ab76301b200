package domain

import "time"

// VisitRecord is a raw aggregate extracted from the browser history store.
// Immutable once extracted; scoring happens downstream.
type VisitRecord struct {
	// URL is the full visited URL.
	URL string

	// Title is the page title as recorded by the browser.
	// May be empty; display falls back to Domain.
	Title string

	// VisitCount is the number of visits inside the analysis window.
	VisitCount int

	// TotalVisitCount is the lifetime visit count kept by the store.
	TotalVisitCount int

	// LastVisit is the most recent visit time, decoded to calendar time.
	LastVisit time.Time

	// Domain is the URL authority (host), used for display and favicons.
	Domain string
}

// ScoredLink is the unit persisted by the exporter and consumed by the
// start page. Created once per analysis run and never mutated afterwards.
type ScoredLink struct {
	URL             string  `json:"url"`
	Title           string  `json:"title"`
	Domain          string  `json:"domain"`
	VisitCount      int     `json:"visit_count"`
	TotalVisitCount int     `json:"total_visit_count"`
	LastVisit       string  `json:"last_visit"`
	DaysSinceVisit  int     `json:"days_since_visit"`
	RecencyScore    float64 `json:"recency_score"`
	CombinedScore   float64 `json:"combined_score"`
	Category        string  `json:"category"`
}

// BookmarkRecord is one link entry parsed from an HTML bookmark export.
type BookmarkRecord struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Category  string `json:"category"`
	AddedDate string `json:"added_date"`
	Favicon   string `json:"favicon"`
}

// MergedRecord is the union shape produced by merging a bookmark export
// with a history export. Bookmarks keep their original fields; history
// entries are tagged with Source "history" and carry their combined score.
type MergedRecord struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Domain     string  `json:"domain"`
	Category   string  `json:"category"`
	AddedDate  string  `json:"added_date,omitempty"`
	Favicon    string  `json:"favicon,omitempty"`
	Source     string  `json:"source,omitempty"`
	VisitCount int     `json:"visit_count,omitempty"`
	Score      float64 `json:"score,omitempty"`
}
