package parse

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

type replacement struct {
	re   *regexp.Regexp
	with string
}

// descriptionRules are applied in order. Later rules clean up what earlier
// ones leave behind.
var descriptionRules = []replacement{
	// links, label included
	{regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), ""},
	// cross references, whole words only
	{regexp.MustCompile(`(?i),?\s*\b(?:source code|demo)\b\s*\)?`), ""},
	// license and stack badges
	{regexp.MustCompile("`[^`]+`"), ""},
	// parenthetical remnants
	{regexp.MustCompile(`\(\s*,\s*`), "("},
	{regexp.MustCompile(`,\s*\)`), ")"},
	{regexp.MustCompile(`\(\s*\)`), ""},
	{regexp.MustCompile(`\(\s*,?\s*\)`), ""},
	// spacing and punctuation
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`,\s*,`), ","},
	{regexp.MustCompile(`\s+\.`), "."},
	{regexp.MustCompile(`\.\s*\)`), ")"},
}

// NormalizeDescription cleans the free text that follows an entry link
// into a presentable sentence without terminal punctuation. It returns ""
// when nothing but decoration was present.
func NormalizeDescription(raw string) string {
	s := html.UnescapeString(strictPolicy.Sanitize(raw))
	for _, r := range descriptionRules {
		s = r.re.ReplaceAllString(s, r.with)
	}
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".")
}

var licensePattern = regexp.MustCompile("`([A-Z][A-Za-z0-9.-]+)`")

// ExtractLicense returns the first code span in text that looks like a
// license identifier (`MIT`, `AGPL-3.0`), or "" if there is none.
func ExtractLicense(text string) string {
	if m := licensePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
