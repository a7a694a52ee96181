package catalog

// Override is a hand-written correction for one record, keyed by slug in
// the override file. Every field is optional; nil fields leave the derived
// value untouched. The ID is not overridable.
type Override struct {
	Name                *string `json:"name,omitempty"`
	Slug                *string `json:"slug,omitempty"`
	Tagline             *string `json:"tagline,omitempty"`
	Description         *string `json:"description,omitempty"`
	PaidAlternative     *string `json:"paid_alternative,omitempty"`
	PaidAlternativeSlug *string `json:"paid_alternative_slug,omitempty"`
	License             *string `json:"license,omitempty"`
	Category            *string `json:"category,omitempty"`
	WebsiteURL          *string `json:"website_url,omitempty"`
	Stars               *int    `json:"stars,omitempty"`
	LastUpdated         *string `json:"last_updated,omitempty"`
	Logo                *string `json:"logo,omitempty"`
}

// Apply shallow-merges o onto t. Fields set in o win; dependent fields are
// not recomputed, so overriding PaidAlternative leaves PaidAlternativeSlug
// as derived unless it is overridden too.
func (o Override) Apply(t *Tool) {
	setString(&t.Name, o.Name)
	setString(&t.Slug, o.Slug)
	setString(&t.Tagline, o.Tagline)
	setString(&t.Description, o.Description)
	setString(&t.PaidAlternative, o.PaidAlternative)
	setString(&t.PaidAlternativeSlug, o.PaidAlternativeSlug)
	setString(&t.License, o.License)
	setString(&t.Category, o.Category)
	setString(&t.WebsiteURL, o.WebsiteURL)
	setString(&t.LastUpdated, o.LastUpdated)
	setString(&t.Logo, o.Logo)
	if o.Stars != nil {
		stars := *o.Stars
		t.Stars = &stars
	}
}

// Empty reports whether o sets no field at all.
func (o Override) Empty() bool {
	return o == Override{}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
