package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/errors"
)

func sampleTools() []catalog.Tool {
	a := catalog.NewTool("Foo", "A chat app", "Chat", "https://github.com/foo/foo", "MIT")
	a.SetAlternative("Slack")
	a.SetMetadata(42, "2024-01-01T00:00:00Z")
	b := catalog.NewTool("Bar & Baz", "Notes <fast>", "Notes", "https://bar.example", "")
	b.SetAlternative("Notion")
	return []catalog.Tool{*a, *b}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleTools(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "[\n  {\n    \"id\"") {
		t.Errorf("unexpected layout:\n%s", out)
	}
	if strings.Count(out, `"stars"`) != 1 || strings.Count(out, `"last_updated"`) != 1 {
		t.Errorf("stars/last_updated should only appear on the enriched record:\n%s", out)
	}
	if strings.Contains(out, `"logo"`) {
		t.Error("logo should be omitted when empty")
	}
	if !strings.Contains(out, "Bar & Baz") {
		t.Error("HTML characters should not be escaped")
	}
	if strings.Index(out, `"Foo"`) > strings.Index(out, `"Bar & Baz"`) {
		t.Error("records must keep input order")
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("got %q, want []", buf.String())
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "items.json")
	tools := sampleTools()

	if err := ExportJSON(tools, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got) != len(tools) {
		t.Fatalf("got %d tools, want %d", len(got), len(tools))
	}
	for i := range tools {
		if got[i].Name != tools[i].Name || got[i].WebsiteURL != tools[i].WebsiteURL || got[i].Description != tools[i].Description {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], tools[i])
		}
	}
	if got[0].Stars == nil || *got[0].Stars != 42 {
		t.Error("stars lost")
	}
	if got[1].Stars != nil {
		t.Error("unenriched record gained stars")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the artifact in the directory, got %d entries", len(entries))
	}
}

func TestExportJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ExportJSON(nil, path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("artifact not replaced: %q", data)
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}
