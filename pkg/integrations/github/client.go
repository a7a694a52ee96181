package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/altlist/pkg/buildinfo"
	"github.com/matzehuels/altlist/pkg/cache"
	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// Options configures a [Client]. The zero value is an anonymous client
// against the public API with no cache and no pacing.
type Options struct {
	Token     string        // optional; sent as a Bearer token
	BaseURL   string        // DefaultBaseURL if empty
	UserAgent string        // buildinfo.UserAgent() if empty
	Cache     cache.Cache   // nil disables caching
	CacheTTL  time.Duration // zero stores without expiry
	Timeout   time.Duration // integrations.DefaultTimeout if zero
	Limiter   integrations.Limiter
}

// Client provides access to the GitHub API for repository metadata enrichment.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client.
func NewClient(opts Options) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": opts.UserAgent,
	}
	if headers["User-Agent"] == "" {
		headers["User-Agent"] = buildinfo.UserAgent()
	}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}

	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	c := &Client{
		Client:  integrations.NewClient(opts.Cache, "github", opts.CacheTTL, headers),
		baseURL: base,
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.Limiter != nil {
		c.SetLimiter(opts.Limiter)
	}
	return c
}

// RepoStats is the subset of repository metadata the catalog records.
type RepoStats struct {
	Stars    int    `json:"stars"`
	PushedAt string `json:"pushed_at,omitempty"` // RFC 3339, as returned by the API
}

// Fetch retrieves the star count and last push time of owner/repo.
// If refresh is true, cached data is bypassed. cached reports whether the
// result came from the cache, in which case no request was made.
func (c *Client) Fetch(ctx context.Context, owner, repo string, refresh bool) (stats *RepoStats, cached bool, err error) {
	if err := ValidateRepoRef(owner, repo); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "github repo %s/%s", owner, repo)
	}

	key := strings.ToLower(owner + "/" + repo)
	var s RepoStats
	cached, err = c.Cached(ctx, key, refresh, &s, func() error {
		return c.fetchRepo(ctx, owner, repo, &s)
	})
	if err != nil {
		return nil, false, err
	}
	return &s, cached, nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string, s *RepoStats) error {
	var data repoResponse
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	if err := c.Get(ctx, u, &data); err != nil {
		return fmt.Errorf("github repo %s/%s: %w", owner, repo, err)
	}
	*s = RepoStats{Stars: data.Stars, PushedAt: data.PushedAt}
	return nil
}

type repoResponse struct {
	Stars    int    `json:"stargazers_count"`
	PushedAt string `json:"pushed_at"`
}

// ParseRepoURL extracts owner and repo from a github.com repository URL.
// The host must be github.com or www.github.com and the path must have at
// least two segments; a .git suffix on the repo is dropped.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	u, err := url.Parse(integrations.NormalizeRepoURL(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", "", false
	}
	switch strings.ToLower(u.Hostname()) {
	case "github.com", "www.github.com":
	default:
		return "", "", false
	}

	segs := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segs) < 2 {
		return "", "", false
	}
	owner, repo = segs[0], strings.TrimSuffix(segs[1], ".git")
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}
