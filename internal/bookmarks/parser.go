// Package bookmarks parses browser HTML bookmark exports.
package bookmarks

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/utils"
)

// DefaultMaxAgeDays is the default bookmark age cutoff.
const DefaultMaxAgeDays = 365

// Parser extracts bookmark records from an HTML export document.
type Parser struct {
	MaxAgeDays int

	// Categories is the shared category table; must be the same instance
	// used by the history pipeline so both classify identically.
	Categories domain.CategoryTable

	// Now is the clock used for the age cutoff; defaults to time.Now.
	Now func() time.Time
}

// NewParser builds a Parser with the default age cutoff.
func NewParser(categories domain.CategoryTable) *Parser {
	return &Parser{
		MaxAgeDays: DefaultMaxAgeDays,
		Categories: categories,
		Now:        time.Now,
	}
}

// ParseFile parses the bookmark export at path.
func (p *Parser) ParseFile(path string) ([]domain.BookmarkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("bookmark file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open bookmark file: %w", err)
	}
	defer utils.Close(f)

	return p.Parse(f)
}

// Parse walks the document and emits one record per anchor that carries
// both an href and a Unix-epoch add_date attribute and is younger than the
// age cutoff. Anchors missing either attribute are skipped silently, as
// are add_date values that are not integers.
func (p *Parser) Parse(r io.Reader) ([]domain.BookmarkRecord, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmark HTML: %w", err)
	}

	cutoff := p.Now().AddDate(0, 0, -p.MaxAgeDays).Unix()

	var records []domain.BookmarkRecord
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if record, ok := p.anchorRecord(n, cutoff); ok {
				records = append(records, record)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return records, nil
}

func (p *Parser) anchorRecord(n *html.Node, cutoff int64) (domain.BookmarkRecord, bool) {
	var href, addDateAttr, icon string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "href":
			href = attr.Val
		case "add_date":
			addDateAttr = attr.Val
		case "icon":
			icon = attr.Val
		}
	}

	if href == "" || addDateAttr == "" {
		return domain.BookmarkRecord{}, false
	}

	addDate, err := strconv.ParseInt(addDateAttr, 10, 64)
	if err != nil {
		return domain.BookmarkRecord{}, false
	}
	if addDate < cutoff {
		return domain.BookmarkRecord{}, false
	}

	title := strings.TrimSpace(textContent(n))

	host := ""
	if parsed, err := url.Parse(href); err == nil {
		host = parsed.Host
	}

	if icon == "" {
		icon = fmt.Sprintf("https://%s/favicon.ico", host)
	}

	return domain.BookmarkRecord{
		Title:     title,
		URL:       href,
		Domain:    host,
		Category:  p.Categories.Categorize(href, title),
		AddedDate: time.Unix(addDate, 0).Format(time.RFC3339),
		Favicon:   icon,
	}, true
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
