// Package toolcorpus builds the unified tool catalog from the three sources
// named in §4.1: a deep-crawled HTML directory (A), a paginated JSON API
// (B), and a Markdown server list (C).
package toolcorpus

import (
	"regexp"
	"strings"
)

var (
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	urlPattern = regexp.MustCompile(`https?://\S+`)
	mdFormat   = regexp.MustCompile("[*_` #>~]")
	multiSpace = regexp.MustCompile(`\s+`)
)

// CleanText lowercases text, strips markdown links (keeping their label
// text), bare URLs, and markdown formatting characters, then collapses
// whitespace — the `clean` function named in §4.1.
func CleanText(s string) string {
	s = mdLink.ReplaceAllString(s, "$1")
	s = urlPattern.ReplaceAllString(s, " ")
	s = mdFormat.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ToolText builds the normalized tool_text field per §4.1:
// clean(name + ". " + headline + ". " + description + ". " + tags).
func ToolText(name, headline, description string, tags []string) string {
	joined := name + ". " + headline + ". " + description + ". " + strings.Join(tags, " ")
	return CleanText(joined)
}
