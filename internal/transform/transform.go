// Package transform converts a flat backup-links file into the start
// page's nested default-links format with a three-column layout.
package transform

import (
	"fmt"
	"time"

	"github.com/yohoo/startpage/internal/logger"
)

const (
	// ExportVersion is stamped into every generated export document.
	ExportVersion = "1.0.0"

	// Columns is the fixed number of layout columns.
	Columns = 3
)

// BackupLink is one entry of the flat backup format.
type BackupLink struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// BackupData is the root of the flat backup format.
type BackupData struct {
	Links []BackupLink `json:"links"`
}

// Link is a start-page link in export form.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  int64  `json:"date"` // Unix milliseconds
}

// Section groups links under a named, icon-tagged heading.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Links []Link `json:"links"`
}

// Column holds section ids in display order.
type Column struct {
	ID       string   `json:"id"`
	Sections []string `json:"sections"`
}

// Layout distributes sections across columns.
type Layout struct {
	Columns []Column `json:"columns"`
}

// ExportData is the start page's import/export document.
type ExportData struct {
	Version    string   `json:"version"`
	ExportDate string   `json:"exportDate"`
	ExportedBy string   `json:"exportedBy"`
	Data       Data     `json:"data"`
	Metadata   Metadata `json:"metadata"`
}

type Data struct {
	Sections  []Section `json:"sections"`
	Trash     []Link    `json:"trash"`
	Layout    Layout    `json:"layout"`
	FontScale float64   `json:"fontScale"`
}

type Metadata struct {
	SectionCount int `json:"sectionCount"`
	LinkCount    int `json:"linkCount"`
	TrashCount   int `json:"trashCount"`
	Columns      int `json:"columns"`
}

// sectionConfig maps known section names to their stable id and icon.
// Links in sections not listed here are skipped with a warning.
var sectionConfig = map[string]struct {
	ID   string
	Icon string
}{
	"Norwegian Essentials":  {ID: "norwegian-essentials", Icon: "🇳🇴"},
	"Transport & Travel":    {ID: "transport-travel", Icon: "🚆"},
	"Norwegian News":        {ID: "norwegian-news", Icon: "📰"},
	"International News":    {ID: "international-news", Icon: "🌍"},
	"Norwegian Streaming":   {ID: "norwegian-streaming", Icon: "📺"},
	"Global Streaming":      {ID: "global-streaming", Icon: "🎬"},
	"Events & Culture":      {ID: "events-culture", Icon: "🎭"},
	"Government & Official": {ID: "government-official", Icon: "🏛️"},
	"Banking":               {ID: "banking", Icon: "🏦"},
	"Development":           {ID: "development", Icon: "💻"},
	"Productivity & Tools":  {ID: "productivity-tools", Icon: "🛠️"},
	"AI & Research":         {ID: "ai-research", Icon: "🤖"},
	"Learn Norwegian":       {ID: "learn-norwegian", Icon: "📚"},
	"Online Learning":       {ID: "online-learning", Icon: "🎓"},
	"Outdoors & Activities": {ID: "outdoors-activities", Icon: "⛰️"},
	"Food & Groceries":      {ID: "food-groceries", Icon: "🍽️"},
	"Interesting & Fun":     {ID: "interesting-fun", Icon: "🎨"},
}

// Transform groups the backup's flat links by section, maps sections
// through the fixed configuration and lays the result out round-robin
// across three columns. Section order follows first appearance in the
// backup; unknown sections are dropped with a warning.
func Transform(backup BackupData, now time.Time, log logger.Logger) ExportData {
	bySection := make(map[string][]Link)
	var sectionOrder []string

	for idx, link := range backup.Links {
		if _, seen := bySection[link.Section]; !seen {
			sectionOrder = append(sectionOrder, link.Section)
		}
		bySection[link.Section] = append(bySection[link.Section], Link{
			ID:    fmt.Sprintf("link-%04d", idx),
			Title: link.Title,
			URL:   link.URL,
			Date:  now.UnixMilli(),
		})
	}

	sections := make([]Section, 0, len(sectionOrder))
	var sectionIDs []string
	for _, name := range sectionOrder {
		cfg, ok := sectionConfig[name]
		if !ok {
			log.Warn("unknown section, skipping", logger.String("section", name))
			continue
		}
		sections = append(sections, Section{
			ID:    cfg.ID,
			Title: name,
			Icon:  cfg.Icon,
			Links: bySection[name],
		})
		sectionIDs = append(sectionIDs, cfg.ID)
	}

	layout := Layout{Columns: make([]Column, Columns)}
	for i := range layout.Columns {
		layout.Columns[i] = Column{ID: fmt.Sprintf("col-%d", i+1)}
	}
	for idx, id := range sectionIDs {
		col := idx % Columns
		layout.Columns[col].Sections = append(layout.Columns[col].Sections, id)
	}

	totalLinks := 0
	for _, s := range sections {
		totalLinks += len(s.Links)
	}

	return ExportData{
		Version:    ExportVersion,
		ExportDate: now.Format(time.RFC3339),
		ExportedBy: "Yohoo Transform",
		Data: Data{
			Sections:  sections,
			Trash:     []Link{},
			Layout:    layout,
			FontScale: 2.0,
		},
		Metadata: Metadata{
			SectionCount: len(sections),
			LinkCount:    totalLinks,
			TrashCount:   0,
			Columns:      Columns,
		},
	}
}
