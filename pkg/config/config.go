// Package config holds the settings of a catalog build.
//
// Settings come from three layers, later ones winning:
//
//  1. [Default]
//  2. a TOML or YAML file passed to [Load] (format chosen by extension)
//  3. environment variables applied by [Config.ApplyEnv]
//
// Command-line flags are applied on top by the CLI. [Config.Validate] runs
// last.
//
// Example altlist.toml:
//
//	output = "public/items.json"
//
//	[enrich]
//	interval = "1s"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "12h"
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/altlist/pkg/cache"
	"github.com/matzehuels/altlist/pkg/enrich"
	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/integrations/github"
	"github.com/matzehuels/altlist/pkg/source"
)

// Default file locations, relative to the working directory.
const (
	DefaultOverridesPath = "data/tool-overrides.json"
	DefaultOutputPath    = "data/items.json"
)

// Environment variables read by ApplyEnv.
const (
	EnvGitHubToken  = "GITHUB_TOKEN"
	EnvCacheBackend = "ALTLIST_CACHE_BACKEND"
	EnvCacheDir     = "ALTLIST_CACHE_DIR"
	EnvRedisURL     = "ALTLIST_REDIS_URL"
)

// Config is the full build configuration.
type Config struct {
	SourceURL     string `toml:"source_url" yaml:"source_url"`
	OverridesPath string `toml:"overrides" yaml:"overrides"`
	OutputPath    string `toml:"output" yaml:"output"`
	RulesPath     string `toml:"rules" yaml:"rules"` // empty: embedded rules

	Enrich  Enrich  `toml:"enrich" yaml:"enrich"`
	Cache   Cache   `toml:"cache" yaml:"cache"`
	Summary Summary `toml:"summary" yaml:"summary"`
}

// Enrich configures GitHub metadata lookups.
type Enrich struct {
	Enabled    bool          `toml:"enabled" yaml:"enabled"`
	Interval   time.Duration `toml:"interval" yaml:"interval"`
	Timeout    time.Duration `toml:"timeout" yaml:"timeout"`
	UserAgent  string        `toml:"user_agent" yaml:"user_agent"`
	Token      string        `toml:"token" yaml:"token"`
	APIBaseURL string        `toml:"api_base_url" yaml:"api_base_url"`
}

// Cache configures where enrichment responses are kept between runs.
type Cache struct {
	Backend  string        `toml:"backend" yaml:"backend"` // file, redis, none
	Dir      string        `toml:"dir" yaml:"dir"`         // file backend; empty: XDG cache dir
	RedisURL string        `toml:"redis_url" yaml:"redis_url"`
	TTL      time.Duration `toml:"ttl" yaml:"ttl"`
}

// Summary configures the console report.
type Summary struct {
	Top int `toml:"top" yaml:"top"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceURL:     source.DefaultURL,
		OverridesPath: DefaultOverridesPath,
		OutputPath:    DefaultOutputPath,
		Enrich: Enrich{
			Enabled:    true,
			Interval:   enrich.DefaultInterval,
			Timeout:    10 * time.Second,
			APIBaseURL: github.DefaultBaseURL,
		},
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     24 * time.Hour,
		},
		Summary: Summary{Top: 10},
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unsupported config format %q (want .toml, .yaml or .yml)", path, ext)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables. Empty variables are ignored.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvGitHubToken); v != "" {
		c.Enrich.Token = v
	}
	if v := getenv(EnvCacheBackend); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv(EnvCacheDir); v != "" {
		c.Cache.Dir = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
}

// Validate checks the configuration for values the build cannot use.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SourceURL, validation.Required),
		validation.Field(&c.OutputPath, validation.Required, validation.By(outputPath)),
		validation.Field(&c.Enrich),
		validation.Field(&c.Cache),
		validation.Field(&c.Summary),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	return nil
}

// Validate implements validation.Validatable.
func (e Enrich) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Interval, validation.Min(time.Duration(0))),
		validation.Field(&e.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&e.APIBaseURL, validation.When(e.Enabled, validation.Required), is.URL),
	)
}

// Validate implements validation.Validatable.
func (c Cache) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Backend, validation.Required,
			validation.In(cache.BackendFile, cache.BackendRedis, cache.BackendNone)),
		validation.Field(&c.RedisURL, validation.When(c.Backend == cache.BackendRedis, validation.Required)),
		validation.Field(&c.TTL, validation.Min(time.Duration(0))),
	)
}

// Validate implements validation.Validatable.
func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Top, validation.Required, validation.Min(1)),
	)
}

func outputPath(value any) error {
	p, _ := value.(string)
	if err := errors.ValidateOutputPath(p); err != nil {
		return fmt.Errorf("%s", errors.UserMessage(err))
	}
	return nil
}
