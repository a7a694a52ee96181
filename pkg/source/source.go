// Package source retrieves the markdown document the catalog is built from.
//
// Locations with an http or https scheme are fetched with a single GET.
// Anything else (a plain path or a file:// URL) is read from disk, which
// keeps offline runs and fixtures on the same code path.
package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/altlist/pkg/buildinfo"
	"github.com/matzehuels/altlist/pkg/errors"
	"github.com/matzehuels/altlist/pkg/integrations"
)

// DefaultURL is the awesome-selfhosted README.
const DefaultURL = "https://raw.githubusercontent.com/awesome-selfhosted/awesome-selfhosted/master/README.md"

// FetchError reports that the source document could not be retrieved.
// StatusCode is 0 when no HTTP response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap exposes the failure as a FETCH_FAILED [errors.Error] whose cause
// is the underlying error.
func (e *FetchError) Unwrap() error {
	return errors.Wrap(errors.ErrCodeFetchFailed, e.Err, "fetch %s", e.URL)
}

// Fetcher retrieves source documents.
type Fetcher struct {
	client *integrations.Client
}

// NewFetcher returns a Fetcher whose remote requests time out after timeout
// (integrations.DefaultTimeout if zero). Responses are never cached.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = buildinfo.UserAgent()
	}
	c := integrations.NewClient(nil, "", 0, map[string]string{
		"User-Agent": userAgent,
		"Accept":     "text/markdown, text/plain;q=0.9, */*;q=0.1",
	})
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Fetcher{client: c}
}

// Fetch returns the full document at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if path, ok := localPath(location); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &FetchError{URL: location, Err: err}
		}
		return string(data), nil
	}

	text, err := f.client.GetText(ctx, location)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &FetchError{URL: location, StatusCode: integrations.StatusCode(err), Err: err}
	}
	return text, nil
}

func localPath(location string) (string, bool) {
	u, err := url.Parse(location)
	if err != nil {
		return location, true
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return "", false
	case "file":
		return u.Path, true
	default:
		return location, true
	}
}
