package request

import (
	"regexp"
	"strings"
)

// titlePatterns are tried in order; the first match wins. The order is a
// fixed tie-break for titles that match more than one pattern, not a
// specificity ranking.
var titlePatterns = []struct {
	re      *regexp.Regexp
	itemIdx int
	charIdx int
}{
	// "Black Acrylia Pick for Gandalf"
	{regexp.MustCompile(`(?i)^(.+?)\s+for\s+(\w+)`), 1, 2},
	// "Mychar needs Ancient Spell"
	{regexp.MustCompile(`(?i)^(\w+)\s+needs\s+(.+)`), 2, 1},
	// "Request: Hardened Clay Brick - Builder" (colon optional, en-dash allowed)
	{regexp.MustCompile(`(?i)^request:?\s*(.+?)\s*[-–]\s*(\w+)`), 1, 2},
}

// ParseTitle extracts an (item, character) pair from a forum post title.
// ok is false when the title matches none of the known request patterns;
// for forum auto-scan that simply means the post is not a crafting request.
func ParseTitle(title string) (item, character string, ok bool) {
	title = strings.TrimSpace(title)

	for _, pattern := range titlePatterns {
		m := pattern.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[pattern.itemIdx]), strings.TrimSpace(m[pattern.charIdx]), true
	}
	return "", "", false
}
