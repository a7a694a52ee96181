package enrich

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/integrations"
	"github.com/matzehuels/altlist/pkg/integrations/github"
)

// Metadata is what enrichment adds to a record.
type Metadata struct {
	Stars       int
	LastUpdated string // last push, RFC 3339
}

// RepoFetcher looks up repository statistics. cached reports that no
// network request was made. *github.Client implements it.
type RepoFetcher interface {
	Fetch(ctx context.Context, owner, repo string, refresh bool) (stats *github.RepoStats, cached bool, err error)
}

// Stats counts enrichment outcomes for one run.
type Stats struct {
	Eligible    int // URLs that named a repository
	Enriched    int // eligible URLs that produced metadata
	Cached      int // of Enriched, served from cache
	RateLimited int
	Failed      int // not found, network and other errors
}

// Enricher resolves metadata for website URLs. It is not safe for
// concurrent use; entries are enriched one at a time.
type Enricher struct {
	repos   RepoFetcher
	logger  *log.Logger
	refresh bool
	stats   Stats
}

// New returns an Enricher backed by repos. If refresh is true, cached
// responses are ignored (but still updated). logger may be nil.
func New(repos RepoFetcher, logger *log.Logger, refresh bool) *Enricher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Enricher{repos: repos, logger: logger, refresh: refresh}
}

// Eligible returns the owner and repository named by websiteURL, if it is a
// GitHub repository URL whose segments are safe to put in an API path.
func Eligible(websiteURL string) (owner, repo string, ok bool) {
	owner, repo, ok = github.ParseRepoURL(websiteURL)
	if !ok {
		return "", "", false
	}
	if github.ValidateRepoRef(owner, repo) != nil {
		return "", "", false
	}
	return owner, repo, true
}

// Enrich returns metadata for websiteURL, or false if there is none.
func (e *Enricher) Enrich(ctx context.Context, websiteURL string) (*Metadata, bool) {
	owner, repo, ok := Eligible(websiteURL)
	if !ok {
		return nil, false
	}
	e.stats.Eligible++
	ref := owner + "/" + repo

	s, cached, err := e.repos.Fetch(ctx, owner, repo, e.refresh)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			// interrupted; the caller sees ctx
		case errors.IsRateLimited(err):
			e.stats.RateLimited++
			e.logger.Warn("rate limit hit, skipping", "repo", ref, "status", integrations.StatusCode(err))
		default:
			e.stats.Failed++
			e.logger.Debug("no repository metadata", "repo", ref, "error", err)
		}
		return nil, false
	}

	e.stats.Enriched++
	if cached {
		e.stats.Cached++
	}
	e.logger.Debug("enriched", "repo", ref, "stars", s.Stars, "cached", cached)
	return &Metadata{Stars: s.Stars, LastUpdated: s.PushedAt}, true
}

// Stats returns the outcome counters so far.
func (e *Enricher) Stats() Stats {
	return e.stats
}
