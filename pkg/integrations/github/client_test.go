package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/altlist/pkg/cache"
	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/integrations"
)

func TestClient_Fetch(t *testing.T) {
	var gotAccept, gotAuth, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/repos/owner/repo":
			json.NewEncoder(w).Encode(map[string]any{
				"stargazers_count": 100,
				"pushed_at":        "2024-05-01T12:00:00Z",
				"size":             500,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL, "secret")

	stats, cached, err := c.Fetch(context.Background(), "owner", "repo", true)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if cached {
		t.Error("refresh fetch should not be cached")
	}
	if stats.Stars != 100 {
		t.Errorf("expected 100 stars, got %d", stats.Stars)
	}
	if stats.PushedAt != "2024-05-01T12:00:00Z" {
		t.Errorf("pushed_at = %q", stats.PushedAt)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUA != "altlist-test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestClient_FetchCaches(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"stargazers_count": 7})
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	ctx := context.Background()

	if _, cached, err := c.Fetch(ctx, "Owner", "Repo", false); err != nil || cached {
		t.Fatalf("first Fetch: cached %v, err %v", cached, err)
	}
	stats, cached, err := c.Fetch(ctx, "owner", "repo", false)
	if err != nil || !cached {
		t.Fatalf("second Fetch: cached %v, err %v", cached, err)
	}
	if stats.Stars != 7 {
		t.Errorf("cached stars = %d", stats.Stars)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server called %d times, want 1", n)
	}

	if _, cached, _ := c.Fetch(ctx, "owner", "repo", true); cached {
		t.Error("refresh should bypass the cache")
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server called %d times after refresh, want 2", n)
	}
}

func TestClient_FetchCacheKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"stargazers_count": 31000})
	}))
	defer server.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(Options{BaseURL: server.URL, Cache: fc})
	ctx := context.Background()

	if _, _, err := c.Fetch(ctx, "Mattermost", "Mattermost", false); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	data, hit, err := fc.Get(ctx, cache.Key("github", "mattermost/mattermost"))
	if err != nil || !hit {
		t.Fatalf("entry under cache.Key: hit %v, err %v", hit, err)
	}
	var s RepoStats
	if err := json.Unmarshal(data, &s); err != nil || s.Stars != 31000 {
		t.Errorf("cached entry = %s (err %v)", data, err)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		rateLimited bool
	}{
		{"not found", http.StatusNotFound, false},
		{"forbidden", http.StatusForbidden, true},
		{"too many requests", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, _, err := testClient(t, server.URL, "").Fetch(context.Background(), "owner", "repo", false)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.IsRateLimited(err) != tt.rateLimited {
				t.Errorf("IsRateLimited = %v, want %v (err %v)", !tt.rateLimited, tt.rateLimited, err)
			}
			if got := integrations.StatusCode(err); got != tt.status {
				t.Errorf("StatusCode = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestClient_FetchInvalidRef(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid repo ref")
	}))
	defer server.Close()

	_, _, err := testClient(t, server.URL, "").Fetch(context.Background(), "-bad", "repo", false)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/foo/bar", "foo", "bar", true},
		{"http://github.com/baz/qux", "baz", "qux", true},
		{"https://www.github.com/foo/bar/", "foo", "bar", true},
		{"https://GitHub.com/foo/bar", "foo", "bar", true},
		{"https://github.com/foo/bar.git", "foo", "bar", true},
		{"https://github.com/foo/bar/tree/main/docs", "foo", "bar", true},
		{"https://github.com/foo/bar#readme", "foo", "bar", true},
		{"https://github.com/foo", "", "", false},
		{"https://github.com/", "", "", false},
		{"https://gist.github.com/foo/bar", "", "", false},
		{"https://foo.github.io/bar", "", "", false},
		{"https://example.com/github.com/foo/bar", "", "", false},
		{"https://gitlab.com/foo/bar", "", "", false},
		{"ftp://github.com/foo/bar", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		owner, repo, ok := ParseRepoURL(tt.url)
		if ok != tt.wantOK {
			t.Errorf("ParseRepoURL(%q) ok=%v, want %v", tt.url, ok, tt.wantOK)
			continue
		}
		if owner != tt.wantOwner || repo != tt.wantRepo {
			t.Errorf("ParseRepoURL(%q) = %s/%s, want %s/%s", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
		}
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient(Options{Token: "test-token"})
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(Options{
		Token:     token,
		BaseURL:   serverURL,
		UserAgent: "altlist-test",
		Cache:     fc,
		CacheTTL:  time.Hour,
	})
}
