package fetch

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractTitle pulls a best-effort title out of an HTML document.
// Priority order, first non-empty wins:
//
//  1. the <title> element text
//  2. the og:title meta content
//  3. the twitter:title meta content
//
// Returns "" when no candidate is found or the document cannot be parsed.
func ExtractTitle(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var htmlTitle, ogTitle, twitterTitle string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if htmlTitle == "" {
					htmlTitle = nodeText(n)
				}
			case "meta":
				var property, name, content string
				for _, attr := range n.Attr {
					switch strings.ToLower(attr.Key) {
					case "property":
						property = strings.ToLower(attr.Val)
					case "name":
						name = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if property == "og:title" && ogTitle == "" {
					ogTitle = content
				} else if name == "twitter:title" && twitterTitle == "" {
					twitterTitle = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for _, candidate := range []string{htmlTitle, ogTitle, twitterTitle} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
