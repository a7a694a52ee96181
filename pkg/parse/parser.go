package parse

import (
	"regexp"
	"strings"

	"github.com/matzehuels/altlist/pkg/catalog"
)

var (
	headingPattern = regexp.MustCompile(`^###\s+(.+)$`)
	entryPattern   = regexp.MustCompile("^-\\s+\\[([^\\]]+)\\]\\(([^)]+)\\)\\s*(?:`([^`]*)`\\s*)?-\\s*(.+)$")
)

// Entry is one list item recognized in the document.
type Entry struct {
	Name           string
	URL            string
	RawDescription string
	Description    string // normalized
	License        string // catalog.DefaultLicense when no badge was found
	Category       string
	Line           int // 1-based line number in the document
}

// Stats counts what the fold saw. Dropped entries matched the entry pattern
// but were filtered out.
type Stats struct {
	Lines    int
	Headings int
	Entries  int
	Dropped  int
}

// State is the accumulator threaded through [Step].
type State struct {
	Category string
	// Skip is set while the current heading is navigation or metadata.
	Skip    bool
	Entries []Entry
	Stats   Stats
}

// NewState returns the state before the first line: no heading seen yet.
func NewState() State {
	return State{Category: catalog.Uncategorized}
}

// Step consumes one line.
func Step(s State, line string) State {
	s.Stats.Lines++
	line = strings.TrimRight(line, "\r")

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		s.Category = strings.TrimSpace(m[1])
		s.Skip = isNonContentHeading(s.Category)
		s.Stats.Headings++
		return s
	}

	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return s
	}
	name, url, badge, raw := m[1], strings.TrimSpace(m[2]), m[3], m[4]

	desc := NormalizeDescription(raw)
	if s.Skip || url == "" || strings.HasPrefix(url, "#") || desc == "" {
		s.Stats.Dropped++
		return s
	}

	license := ExtractLicense("`" + badge + "` " + raw)
	if license == "" {
		license = catalog.DefaultLicense
	}

	s.Entries = append(s.Entries, Entry{
		Name:           strings.TrimSpace(name),
		URL:            url,
		RawDescription: raw,
		Description:    desc,
		License:        license,
		Category:       s.Category,
		Line:           s.Stats.Lines,
	})
	s.Stats.Entries++
	return s
}

// Document folds every line of text and returns the entries in document
// order.
func Document(text string) ([]Entry, Stats) {
	s := NewState()
	for _, line := range strings.Split(text, "\n") {
		s = Step(s, line)
	}
	return s.Entries, s.Stats
}

func isNonContentHeading(h string) bool {
	return strings.Contains(strings.ToLower(h), "back to top") || strings.Contains(h, "License")
}
