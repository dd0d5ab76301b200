package domain

import "strings"

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "misc"

// Category maps a name to the lowercase substring keywords that select it.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryTable is an ordered set of categories. Declaration order is
// precedence order: the first category with a matching keyword wins.
//
// A single table instance must be shared by every categorizing pipeline
// (history analysis and bookmark parsing) so both classify identically.
type CategoryTable []Category

// Categorize assigns a best-fit category to a URL/title pair. Both inputs
// are lowercased; a keyword matches if it appears in either. Returns
// DefaultCategory when nothing matches. Pure function, no I/O.
func (t CategoryTable) Categorize(url, title string) string {
	urlLower := strings.ToLower(url)
	titleLower := strings.ToLower(title)

	for _, category := range t {
		for _, keyword := range category.Keywords {
			if strings.Contains(urlLower, keyword) || strings.Contains(titleLower, keyword) {
				return category.Name
			}
		}
	}

	return DefaultCategory
}

// DefaultCategories returns the built-in category table. The slice is
// freshly allocated so callers cannot mutate the shared definition.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		{Name: "work-productivity", Keywords: []string{
			"mail.google", "calendar.google", "notion", "drive.google",
			"docs.google", "sheets.google", "slides.google", "workspace",
			"trello", "asana", "monday", "clickup",
		}},
		{Name: "development", Keywords: []string{
			"github", "gitlab", "stackoverflow", "developer.mozilla",
			"docs.python", "npmjs", "pypi", "docker", "kubernetes",
			"console.cloud.google", "aws.amazon", "vercel", "netlify",
		}},
		{Name: "browser-settings", Keywords: []string{
			"chrome://settings", "chrome-settings",
			"chrome://extensions", "chrome-extensions",
			"firefox:preferences", "about:preferences",
			"about:addons", "about:config",
			"edge://settings", "edge-settings",
			"edge://extensions",
			"brave://settings", "brave-settings",
			"brave://extensions",
		}},
		{Name: "communication", Keywords: []string{
			"slack", "teams.microsoft", "discord", "zoom", "meet.google",
			"chat.", "telegram", "whatsapp",
		}},
		{Name: "media-entertainment", Keywords: []string{
			"youtube", "netflix", "spotify", "reddit", "twitter", "facebook",
			"instagram", "tiktok", "twitch", "vimeo",
		}},
		{Name: "research-learning", Keywords: []string{
			"wikipedia", "arxiv", "coursera", "udemy", "medium", "substack",
			"scholar.google", "researchgate", "jstor",
		}},
		{Name: "personal", Keywords: []string{
			"amazon", "ebay", "maps.google", "weather", "booking",
			"airbnb", "paypal", "bank", "finn.no",
		}},
		{Name: "tools-utilities", Keywords: []string{
			"chatgpt", "chat.openai", "translate.google", "canva", "figma",
			"miro", "excalidraw", "analytics", "grafana",
		}},
	}
}
