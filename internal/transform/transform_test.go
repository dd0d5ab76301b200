package transform

import (
	"testing"
	"time"

	"github.com/yohoo/startpage/internal/logger"
)

var fixedNow = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

func TestTransformGroupsBySection(t *testing.T) {
	backup := BackupData{Links: []BackupLink{
		{Section: "Norwegian News", Title: "NRK", URL: "https://www.nrk.no/"},
		{Section: "Development", Title: "GitHub", URL: "https://github.com/"},
		{Section: "Norwegian News", Title: "VG", URL: "https://www.vg.no/"},
	}}

	out := Transform(backup, fixedNow, logger.Nop())

	if len(out.Data.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(out.Data.Sections))
	}

	news := out.Data.Sections[0]
	if news.ID != "norwegian-news" || news.Title != "Norwegian News" {
		t.Errorf("first section = %s/%s, want norwegian-news in first-appearance order", news.ID, news.Title)
	}
	if len(news.Links) != 2 {
		t.Fatalf("norwegian-news has %d links, want 2", len(news.Links))
	}
	if news.Links[0].Title != "NRK" || news.Links[1].Title != "VG" {
		t.Errorf("link order within section must follow the backup: %+v", news.Links)
	}
	if news.Icon == "" {
		t.Error("section icon must be set from the fixed configuration")
	}

	if out.Data.Sections[1].ID != "development" {
		t.Errorf("second section = %s, want development", out.Data.Sections[1].ID)
	}
}

func TestTransformLinkIDsAndDates(t *testing.T) {
	backup := BackupData{Links: []BackupLink{
		{Section: "Banking", Title: "DNB", URL: "https://www.dnb.no/"},
		{Section: "Banking", Title: "Sbanken", URL: "https://www.sbanken.no/"},
	}}

	out := Transform(backup, fixedNow, logger.Nop())
	links := out.Data.Sections[0].Links

	if links[0].ID != "link-0000" || links[1].ID != "link-0001" {
		t.Errorf("ids = %s, %s, want zero-padded sequence", links[0].ID, links[1].ID)
	}
	for _, l := range links {
		if l.Date != fixedNow.UnixMilli() {
			t.Errorf("Date = %d, want %d (unix milliseconds)", l.Date, fixedNow.UnixMilli())
		}
	}
}

func TestTransformSkipsUnknownSections(t *testing.T) {
	backup := BackupData{Links: []BackupLink{
		{Section: "Development", Title: "GitHub", URL: "https://github.com/"},
		{Section: "Cryptids", Title: "Mothman Facts", URL: "https://example.com/mothman"},
	}}

	out := Transform(backup, fixedNow, logger.Nop())

	if len(out.Data.Sections) != 1 {
		t.Fatalf("got %d sections, want unknown section dropped", len(out.Data.Sections))
	}
	if out.Metadata.LinkCount != 1 {
		t.Errorf("LinkCount = %d, want 1 (dropped links excluded)", out.Metadata.LinkCount)
	}
}

func TestTransformRoundRobinLayout(t *testing.T) {
	backup := BackupData{Links: []BackupLink{
		{Section: "Norwegian News", Title: "a", URL: "https://a.example"},
		{Section: "Development", Title: "b", URL: "https://b.example"},
		{Section: "Banking", Title: "c", URL: "https://c.example"},
		{Section: "AI & Research", Title: "d", URL: "https://d.example"},
	}}

	out := Transform(backup, fixedNow, logger.Nop())
	cols := out.Data.Layout.Columns

	if len(cols) != Columns {
		t.Fatalf("got %d columns, want %d", len(cols), Columns)
	}
	if cols[0].ID != "col-1" || cols[2].ID != "col-3" {
		t.Errorf("column ids = %s..%s, want col-1..col-3", cols[0].ID, cols[2].ID)
	}

	want := [][]string{
		{"norwegian-news", "ai-research"},
		{"development"},
		{"banking"},
	}
	for i, w := range want {
		if len(cols[i].Sections) != len(w) {
			t.Fatalf("column %d has %v, want %v", i+1, cols[i].Sections, w)
		}
		for j, id := range w {
			if cols[i].Sections[j] != id {
				t.Errorf("column %d slot %d = %s, want %s", i+1, j, cols[i].Sections[j], id)
			}
		}
	}
}

func TestTransformMetadataAndEnvelope(t *testing.T) {
	backup := BackupData{Links: []BackupLink{
		{Section: "Development", Title: "GitHub", URL: "https://github.com/"},
		{Section: "Banking", Title: "DNB", URL: "https://www.dnb.no/"},
		{Section: "Development", Title: "GitLab", URL: "https://gitlab.com/"},
	}}

	out := Transform(backup, fixedNow, logger.Nop())

	if out.Version != ExportVersion {
		t.Errorf("Version = %s, want %s", out.Version, ExportVersion)
	}
	if out.ExportDate != fixedNow.Format(time.RFC3339) {
		t.Errorf("ExportDate = %s, want RFC3339 of the clock", out.ExportDate)
	}
	if out.Metadata.SectionCount != 2 || out.Metadata.LinkCount != 3 {
		t.Errorf("metadata = %+v, want 2 sections and 3 links", out.Metadata)
	}
	if out.Metadata.Columns != Columns || out.Metadata.TrashCount != 0 {
		t.Errorf("metadata = %+v, want %d columns and empty trash", out.Metadata, Columns)
	}
	if out.Data.Trash == nil || len(out.Data.Trash) != 0 {
		t.Error("Trash must serialize as an empty array, not null")
	}
	if out.Data.FontScale != 2.0 {
		t.Errorf("FontScale = %v, want 2.0", out.Data.FontScale)
	}
}

func TestTransformEmptyBackup(t *testing.T) {
	out := Transform(BackupData{}, fixedNow, logger.Nop())

	if len(out.Data.Sections) != 0 {
		t.Errorf("got %d sections, want none", len(out.Data.Sections))
	}
	if out.Metadata.LinkCount != 0 || out.Metadata.SectionCount != 0 {
		t.Errorf("metadata = %+v, want zero counts", out.Metadata)
	}
	if len(out.Data.Layout.Columns) != Columns {
		t.Errorf("layout must still carry %d empty columns", Columns)
	}
}
