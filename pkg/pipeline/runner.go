package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/classify"
	"github.com/matzehuels/altlist/pkg/enrich"
	"github.com/matzehuels/altlist/pkg/errors"
	pkgio "github.com/matzehuels/altlist/pkg/io"
	"github.com/matzehuels/altlist/pkg/observability"
	"github.com/matzehuels/altlist/pkg/overrides"
	"github.com/matzehuels/altlist/pkg/parse"
)

// Source retrieves the markdown document. *source.Fetcher implements it.
type Source interface {
	Fetch(ctx context.Context, location string) (string, error)
}

// Runner wires the stages together. It holds no per-run state besides the
// enricher's counters, so a Runner should not execute concurrently.
type Runner struct {
	Source     Source
	Classifier *classify.Classifier
	Enricher   *enrich.Enricher // nil disables enrichment
	Logger     *log.Logger
}

// NewRunner creates a runner. A nil classifier uses the embedded rules and
// a nil logger discards output.
func NewRunner(src Source, c *classify.Classifier, e *enrich.Enricher, logger *log.Logger) *Runner {
	if c == nil {
		c = classify.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Source:     src,
		Classifier: c,
		Enricher:   e,
		Logger:     logger,
	}
}

// Execute runs the complete fetch → parse → build → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Fetch
	fetchStart := time.Now()
	hooks.OnFetchStart(ctx, opts.Source)
	text, err := r.Source.Fetch(ctx, opts.Source)
	result.Stats.FetchTime = time.Since(fetchStart)
	hooks.OnFetchComplete(ctx, opts.Source, len(text), result.Stats.FetchTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.SourceBytes = len(text)
	r.Logger.Info("fetched source",
		"location", opts.Source,
		"bytes", len(text),
		"duration", result.Stats.FetchTime)

	set := overrides.Load(opts.OverridesPath, r.Logger)
	result.Stats.OverridesLoaded = set.Len()
	if set.Len() > 0 {
		r.Logger.Info("loaded overrides", "path", opts.OverridesPath, "count", set.Len())
	}

	// Stage 2: Parse
	parseStart := time.Now()
	entries, ps := parse.Document(text)
	result.Parse = ps
	result.Stats.ParseTime = time.Since(parseStart)
	hooks.OnParseComplete(ctx, ps.Entries, ps.Dropped, result.Stats.ParseTime)
	r.Logger.Info("parsed document",
		"entries", ps.Entries,
		"dropped", ps.Dropped,
		"headings", ps.Headings,
		"duration", result.Stats.ParseTime)
	r.Logger.Debug("parse stats", "lines", ps.Lines)

	// Stage 3: Build records
	buildStart := time.Now()
	enricher := r.Enricher
	if opts.SkipEnrich {
		enricher = nil
	}
	tools, overridden, err := r.Build(ctx, entries, set, enricher)
	if err != nil {
		return nil, err
	}
	result.Tools = tools
	result.Stats.Overridden = overridden
	result.Stats.BuildTime = time.Since(buildStart)
	if enricher != nil {
		result.Enrich = enricher.Stats()
	}
	r.Logger.Info("built records",
		"records", len(tools),
		"enriched", result.Enrich.Enriched,
		"overridden", overridden,
		"duration", result.Stats.BuildTime)

	// Stage 4: Write
	writeStart := time.Now()
	err = pkgio.ExportJSON(tools, opts.OutputPath)
	result.Stats.WriteTime = time.Since(writeStart)
	hooks.OnWriteComplete(ctx, opts.OutputPath, len(tools), result.Stats.WriteTime, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", opts.OutputPath)
	}
	r.Logger.Info("wrote catalog",
		"path", opts.OutputPath,
		"records", len(tools),
		"duration", result.Stats.WriteTime)

	result.Categories = catalog.Summarize(tools)
	return result, nil
}

// Build turns parsed entries into records, in order. Each entry is
// classified, enriched when e is non-nil, then merged with its override.
// It returns the number of records an override was applied to.
//
// Build stops with ctx.Err() as soon as the context is done; partial
// results are discarded.
func (r *Runner) Build(ctx context.Context, entries []parse.Entry, set overrides.Set, e *enrich.Enricher) ([]catalog.Tool, int, error) {
	hooks := observability.Pipeline()
	tools := make([]catalog.Tool, 0, len(entries))
	overridden := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		t := catalog.NewTool(entry.Name, entry.Description, entry.Category, entry.URL, entry.License)
		t.SetAlternative(r.Classifier.Classify(t.Name, t.Description, t.Category))

		if e != nil {
			if md, ok := e.Enrich(ctx, t.WebsiteURL); ok {
				t.SetMetadata(md.Stars, md.LastUpdated)
			}
		}

		ov, ok := set.Lookup(t.Slug)
		if ok {
			ov.Apply(t)
			overridden++
		}

		tools = append(tools, *t)
		hooks.OnEntry(ctx, t.Slug, t.Enriched(), ok)
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return tools, overridden, nil
}
