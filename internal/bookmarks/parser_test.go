package bookmarks

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/yohoo/startpage/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func testParser() *Parser {
	p := NewParser(domain.DefaultCategories())
	p.Now = fixedNow
	return p
}

func TestParseBookmarks(t *testing.T) {
	now := fixedNow()
	recent := now.AddDate(0, 0, -30).Unix()
	ancient := now.AddDate(-2, 0, 0).Unix()

	doc := fmt.Sprintf(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
  <DT><A HREF="https://github.com/user/repo" ADD_DATE="%d" ICON="data:image/png;base64,abc">My Repo</A>
  <DT><A HREF="https://www.nrk.no/" ADD_DATE="%d">NRK</A>
  <DT><A HREF="https://too-old.example.com/" ADD_DATE="%d">Too Old</A>
  <DT><A HREF="https://no-date.example.com/">No Date</A>
  <DT><A ADD_DATE="%d">No Href</A>
  <DT><A HREF="https://bad-date.example.com/" ADD_DATE="not-a-number">Bad Date</A>
</DL></p>`, recent, recent, ancient, recent)

	records, err := testParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}

	repo := records[0]
	if repo.Title != "My Repo" {
		t.Errorf("Title = %q, want My Repo", repo.Title)
	}
	if repo.Domain != "github.com" {
		t.Errorf("Domain = %q, want github.com", repo.Domain)
	}
	if repo.Category != "development" {
		t.Errorf("Category = %q, want development", repo.Category)
	}
	if repo.Favicon != "data:image/png;base64,abc" {
		t.Errorf("Favicon = %q, want the icon attribute", repo.Favicon)
	}

	nrk := records[1]
	if nrk.Favicon != "https://www.nrk.no/favicon.ico" {
		t.Errorf("Favicon fallback = %q, want https://www.nrk.no/favicon.ico", nrk.Favicon)
	}
	added, err := time.Parse(time.RFC3339, nrk.AddedDate)
	if err != nil {
		t.Fatalf("AddedDate %q is not RFC3339: %v", nrk.AddedDate, err)
	}
	if added.Unix() != recent {
		t.Errorf("AddedDate = %v, want unix %d", added, recent)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	records, err := testParser().Parse(strings.NewReader("<html><body>no anchors here</body></html>"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := testParser().ParseFile("/nonexistent/bookmarks.html"); err == nil {
		t.Error("expected error for missing file")
	}
}
