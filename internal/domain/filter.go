package domain

import "strings"

// excludePatterns lists low-value URL fragments that should never reach
// scoring: search result pages, loopback hosts, internal browser pages and
// identity-provider sign-in flows. Matching is case-insensitive substring.
var excludePatterns = []string{
	"google.com/search",
	"localhost",
	"127.0.0.1",
	"chrome://",
	"chrome-extension://",
	"about:",
	"file:///",
	"accounts.google.com/signin",
	"accounts.google.com/ServiceLogin",
}

// maxURLLength is a heuristic bound: longer URLs almost always carry
// session tokens or tracking state and make poor start-page entries.
const maxURLLength = 200

// ShouldExclude reports whether a URL is noise and must be dropped from
// further processing. Pure function, no side effects.
func ShouldExclude(url string) bool {
	lower := strings.ToLower(url)
	for _, pattern := range excludePatterns {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return len(url) > maxURLLength
}
