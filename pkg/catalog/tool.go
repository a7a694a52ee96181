package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Sentinel values used when a field cannot be derived.
const (
	// Uncategorized is the category of entries that appear before any heading.
	Uncategorized = "Uncategorized"

	// DefaultLicense is used when an entry carries no license badge.
	DefaultLicense = "OSS"
)

// Tool is a single record of the output artifact.
//
// Field order matches the serialized JSON. Stars and LastUpdated are only
// present when enrichment succeeded; Logo is only ever set by an override.
type Tool struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Slug                string `json:"slug"`
	Tagline             string `json:"tagline"`
	Description         string `json:"description"`
	PaidAlternative     string `json:"paid_alternative"`
	PaidAlternativeSlug string `json:"paid_alternative_slug"`
	License             string `json:"license"`
	Category            string `json:"category"`
	WebsiteURL          string `json:"website_url"`
	Stars               *int   `json:"stars,omitempty"`
	LastUpdated         string `json:"last_updated,omitempty"`
	Logo                string `json:"logo,omitempty"`
}

// NewTool creates a record with a fresh ID and the fields derived from name
// and description. The paid alternative is left empty; see SetAlternative.
func NewTool(name, description, category, websiteURL, license string) *Tool {
	name = strings.TrimSpace(name)
	if license == "" {
		license = DefaultLicense
	}
	if category == "" {
		category = Uncategorized
	}
	return &Tool{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        Slug(name),
		Tagline:     Tagline(description),
		Description: description,
		License:     license,
		Category:    category,
		WebsiteURL:  websiteURL,
	}
}

// SetAlternative records the paid product this tool replaces, along with
// its slug.
func (t *Tool) SetAlternative(name string) {
	t.PaidAlternative = name
	t.PaidAlternativeSlug = Slug(name)
}

// SetMetadata records repository popularity and activity.
func (t *Tool) SetMetadata(stars int, lastUpdated string) {
	t.Stars = &stars
	t.LastUpdated = lastUpdated
}

// Enriched reports whether repository metadata was attached.
func (t *Tool) Enriched() bool {
	return t.Stars != nil
}
