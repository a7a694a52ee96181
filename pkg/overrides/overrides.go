package overrides

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/errors"
)

const schemaURL = "https://github.com/matzehuels/altlist/override.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	entrySchema = mustCompileSchema()
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile(schemaURL)
}

// Set is a read-only mapping from slug to override.
type Set struct {
	entries map[string]catalog.Override
}

// Lookup returns the override for slug, if any.
func (s Set) Lookup(slug string) (catalog.Override, bool) {
	o, ok := s.entries[slug]
	return o, ok
}

// Len returns the number of usable overrides.
func (s Set) Len() int {
	return len(s.entries)
}

// Slugs returns the keys in sorted order.
func (s Set) Slugs() []string {
	out := make([]string, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Load reads the override file at path. It never fails: problems are logged
// on logger (which may be nil) and degrade to fewer or no overrides.
func Load(path string, logger *log.Logger) Set {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if path == "" {
		return Set{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read overrides file", "path", path, "error", err)
		}
		return Set{}
	}

	set, rejected, err := Parse(data)
	if err != nil {
		logger.Warn("failed to load overrides file", "path", path, "error", err)
		return Set{}
	}
	for _, r := range rejected {
		logger.Warn("skipping invalid override", "slug", r.Slug, "error", r.Err)
	}
	return set
}

// Rejection describes an override entry that was skipped.
type Rejection struct {
	Slug string
	Err  error
}

// Parse decodes an override document. The returned error is non-nil only
// when the document as a whole is unusable (not JSON, or not an object);
// invalid entries are reported as rejections, sorted by slug.
func Parse(data []byte) (Set, []Rejection, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Set{}, nil, errors.Wrap(errors.ErrCodeInvalidOverride, err, "decode overrides")
	}

	set := Set{entries: make(map[string]catalog.Override, len(raw))}
	var rejected []Rejection
	for slug, msg := range raw {
		o, err := parseEntry(msg)
		if err != nil {
			rejected = append(rejected, Rejection{Slug: slug, Err: err})
			continue
		}
		set.entries[slug] = o
	}
	sort.Slice(rejected, func(i, j int) bool { return rejected[i].Slug < rejected[j].Slug })
	return set, rejected, nil
}

func parseEntry(msg json.RawMessage) (catalog.Override, error) {
	var o catalog.Override

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return o, errors.Wrap(errors.ErrCodeInvalidOverride, err, "decode entry")
	}
	if err := entrySchema.Validate(doc); err != nil {
		return o, errors.Wrap(errors.ErrCodeInvalidOverride, err, "schema")
	}

	if err := json.Unmarshal(msg, &o); err != nil {
		return o, errors.Wrap(errors.ErrCodeInvalidOverride, err, "decode entry")
	}
	if err := validateOverride(o); err != nil {
		return o, errors.Wrap(errors.ErrCodeInvalidOverride, err, "fields")
	}
	return o, nil
}

func validateOverride(o catalog.Override) error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Slug, validation.Match(slugPattern)),
		validation.Field(&o.PaidAlternativeSlug, validation.Match(slugPattern)),
		validation.Field(&o.WebsiteURL, is.URL),
		validation.Field(&o.Stars, validation.Min(0)),
		validation.Field(&o.LastUpdated, validation.Date(time.RFC3339)),
	)
}
