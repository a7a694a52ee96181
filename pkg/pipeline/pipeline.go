// Package pipeline runs one catalog build: fetch → parse → classify →
// enrich → merge overrides → write.
//
// This package is the single place the stages are wired together, so the
// CLI and tests get identical behavior.
//
// # Usage
//
//	runner := pipeline.NewRunner(fetcher, classify.Default(), enricher, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:        source.DefaultURL,
//	    OverridesPath: "data/tool-overrides.json",
//	    OutputPath:    "data/items.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range catalog.Top(result.Categories, 10) {
//	    fmt.Println(c.Category, c.Count)
//	}
//
// Entries are processed strictly one at a time. When the context is
// cancelled the run stops before the next entry and no artifact is written.
package pipeline

import (
	"time"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/enrich"
	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/parse"
	"github.com/matzehuels/altlist/pkg/source"
)

// Options configures a single run.
type Options struct {
	// Source is a URL or local path of the markdown list.
	Source string
	// OverridesPath is the override file. Empty or missing means no overrides.
	OverridesPath string
	// OutputPath is where the JSON artifact is written.
	OutputPath string
	// SkipEnrich disables repository metadata lookups for this run.
	SkipEnrich bool
}

// ValidateAndSetDefaults fills in the default source and checks the output
// path.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Source == "" {
		o.Source = source.DefaultURL
	}
	return errors.ValidateOutputPath(o.OutputPath)
}

// Result is what a completed run produced.
type Result struct {
	Tools      []catalog.Tool
	Categories []catalog.CategoryCount
	Parse      parse.Stats
	Enrich     enrich.Stats
	Stats      Stats
}

// Stats holds timings and counters for a run.
type Stats struct {
	SourceBytes     int
	OverridesLoaded int
	Overridden      int // records an override was applied to
	FetchTime       time.Duration
	ParseTime       time.Duration
	BuildTime       time.Duration
	WriteTime       time.Duration
}
