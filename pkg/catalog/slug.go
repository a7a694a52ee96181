package catalog

import (
	"regexp"
	"strings"
)

// taglineWords is the number of description words kept in a tagline.
const taglineWords = 10

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL-safe identifier from a display name.
// The result only contains [a-z0-9-] and never starts or ends with "-".
// Slug is idempotent: Slug(Slug(s)) == Slug(s).
func Slug(name string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// Tagline returns the first ten words of description, followed by "..."
// when words were cut.
func Tagline(description string) string {
	words := strings.Fields(description)
	if len(words) <= taglineWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:taglineWords], " ") + "..."
}
