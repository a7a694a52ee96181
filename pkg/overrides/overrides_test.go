package overrides

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/altlist/pkg/errors"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool-overrides.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	data := `{
		"mattermost": {"license": "AGPL-3.0", "stars": 30000},
		"foo": {"stars": "many"},
		"bar": {"id": "fixed-id"},
		"baz": {"website_url": "not a url"},
		"qux": {"last_updated": "yesterday"},
		"quux": {"paid_alternative_slug": "Not A Slug"},
		"corge": {"stars": -1},
		"grault": "not an object",
		"garply": {}
	}`

	set, rejected, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (kept: %v)", set.Len(), set.Slugs())
	}

	o, ok := set.Lookup("mattermost")
	if !ok {
		t.Fatal("mattermost override missing")
	}
	if o.License == nil || *o.License != "AGPL-3.0" {
		t.Errorf("License = %v", o.License)
	}
	if o.Stars == nil || *o.Stars != 30000 {
		t.Errorf("Stars = %v", o.Stars)
	}
	if _, ok := set.Lookup("garply"); !ok {
		t.Error("empty override should be kept")
	}

	var slugs []string
	for _, r := range rejected {
		slugs = append(slugs, r.Slug)
		if !errors.Is(r.Err, errors.ErrCodeInvalidOverride) {
			t.Errorf("%s: code = %s", r.Slug, errors.GetCode(r.Err))
		}
	}
	want := "bar,baz,corge,foo,grault,quux,qux"
	if got := strings.Join(slugs, ","); got != want {
		t.Errorf("rejected = %s, want %s", got, want)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	for _, data := range []string{`not json`, `[1, 2]`, `"string"`, ``} {
		_, _, err := Parse([]byte(data))
		if !errors.Is(err, errors.ErrCodeInvalidOverride) {
			t.Errorf("Parse(%q) err = %v", data, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	set := Load(filepath.Join(t.TempDir(), "nope.json"), log.New(&buf))
	if set.Len() != 0 {
		t.Errorf("Len() = %d", set.Len())
	}
	if buf.Len() != 0 {
		t.Errorf("missing file should not log, got %q", buf.String())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	var buf bytes.Buffer
	set := Load(writeFile(t, `{"mattermost": {`), log.New(&buf))
	if set.Len() != 0 {
		t.Errorf("Len() = %d", set.Len())
	}
	if !strings.Contains(buf.String(), "failed to load overrides file") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	var buf bytes.Buffer
	path := writeFile(t, `{"foo": {"stars": "many"}, "bar": {"category": "Wikis"}}`)

	set := Load(path, log.New(&buf))
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
	if _, ok := set.Lookup("bar"); !ok {
		t.Error("valid entry dropped")
	}
	if !strings.Contains(buf.String(), "skipping invalid override") || !strings.Contains(buf.String(), "foo") {
		t.Errorf("expected warning naming foo, got %q", buf.String())
	}
}

func TestLoadNilLogger(t *testing.T) {
	set := Load(writeFile(t, `garbage`), nil)
	if set.Len() != 0 {
		t.Errorf("Len() = %d", set.Len())
	}
	if Load("", nil).Len() != 0 {
		t.Error("empty path should give empty set")
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	if _, ok := s.Lookup("x"); ok {
		t.Error("zero Set should have no entries")
	}
	if s.Len() != 0 || len(s.Slugs()) != 0 {
		t.Error("zero Set should be empty")
	}
}
