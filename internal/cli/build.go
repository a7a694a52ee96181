package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/altlist/pkg/config"
	"github.com/matzehuels/altlist/pkg/enrich"
	"github.com/matzehuels/altlist/pkg/integrations/github"
	"github.com/matzehuels/altlist/pkg/observability"
	"github.com/matzehuels/altlist/pkg/pipeline"
	"github.com/matzehuels/altlist/pkg/source"
)

// buildOptions holds the flags of the build command. Flags that were not
// set leave the configuration alone.
type buildOptions struct {
	configPath string
	source     string
	overrides  string
	output     string
	rules      string
	interval   time.Duration
	top        int
	noEnrich   bool
	noCache    bool
	refresh    bool
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the catalog artifact from the awesome-selfhosted list",
		Long: `Build fetches the awesome-selfhosted list, parses every entry, classifies
it against known paid products, enriches GitHub-hosted entries with stars
and last push date, applies overrides and writes the JSON artifact.`,
		Example: `  # Full build with defaults
  altlist build

  # Offline build from a local copy, no GitHub lookups
  altlist build --source README.md --no-enrich

  # Authenticated, faster enrichment
  GITHUB_TOKEN=ghp_... altlist build --interval 100ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	f.StringVar(&opts.source, "source", source.DefaultURL, "markdown list URL or local path")
	f.StringVar(&opts.overrides, "overrides", config.DefaultOverridesPath, "override file keyed by slug")
	f.StringVarP(&opts.output, "output", "o", config.DefaultOutputPath, "artifact path")
	f.StringVar(&opts.rules, "rules", "", "classifier rules file (default: built-in rules)")
	f.DurationVar(&opts.interval, "interval", enrich.DefaultInterval, "minimum delay between GitHub requests")
	f.IntVar(&opts.top, "top", 10, "number of categories in the summary")
	f.BoolVar(&opts.noEnrich, "no-enrich", false, "skip GitHub metadata lookups")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not read or write the response cache")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached responses but update the cache")

	return cmd
}

// config loads the configuration and applies the flags the user set.
func (o buildOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("source") {
		cfg.SourceURL = o.source
	}
	if f.Changed("overrides") {
		cfg.OverridesPath = o.overrides
	}
	if f.Changed("output") {
		cfg.OutputPath = o.output
	}
	if f.Changed("rules") {
		cfg.RulesPath = o.rules
	}
	if f.Changed("interval") {
		cfg.Enrich.Interval = o.interval
	}
	if f.Changed("top") {
		cfg.Summary.Top = o.top
	}
	if o.noEnrich {
		cfg.Enrich.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) runBuild(ctx context.Context, cfg *config.Config, opts buildOptions) error {
	classifier, err := newClassifier(cfg.RulesPath)
	if err != nil {
		return err
	}

	var enricher *enrich.Enricher
	if cfg.Enrich.Enabled {
		store, err := newCache(ctx, cfg.Cache, opts.noCache)
		if err != nil {
			return err
		}
		defer store.Close()

		client := github.NewClient(github.Options{
			Token:     cfg.Enrich.Token,
			BaseURL:   cfg.Enrich.APIBaseURL,
			UserAgent: cfg.Enrich.UserAgent,
			Cache:     store,
			CacheTTL:  cfg.Cache.TTL,
			Timeout:   cfg.Enrich.Timeout,
			Limiter:   enrich.NewIntervalThrottle(cfg.Enrich.Interval),
		})
		enricher = enrich.New(client, c.Logger, opts.refresh)
		if cfg.Enrich.Token == "" {
			c.Logger.Debug("no GitHub token set, using unauthenticated rate limit")
		}
	}

	runner := pipeline.NewRunner(
		source.NewFetcher(cfg.Enrich.UserAgent, cfg.Enrich.Timeout),
		classifier,
		enricher,
		c.Logger,
	)

	prev := observability.Pipeline()
	observability.SetPipelineHooks(&spinnerHooks{PipelineHooks: prev, ctx: ctx})
	defer observability.SetPipelineHooks(prev)

	result, err := runner.Execute(ctx, pipeline.Options{
		Source:        cfg.SourceURL,
		OverridesPath: cfg.OverridesPath,
		OutputPath:    cfg.OutputPath,
		SkipEnrich:    !cfg.Enrich.Enabled,
	})
	if err != nil {
		return err
	}

	printBuildResult(result, cfg.OutputPath, cfg.Summary.Top)
	return nil
}
