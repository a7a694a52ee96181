// Package integrations provides the shared HTTP client used to talk to
// remote services: the source document host and the GitHub API.
//
// # Client
//
// [Client] wraps net/http with:
//   - default headers (User-Agent, Accept, Authorization)
//   - an optional [Limiter] waited on before every network request
//   - response caching through [cache.Cache], keyed per client prefix
//   - status mapping: 404 to [ErrNotFound], 403 and 429 to
//     [errors.RateLimitedError], 5xx to [ErrNetwork], other non-2xx to
//     [ErrUnexpectedStatus]
//   - HTTP observability hooks
//
// Requests are never retried. Callers decide whether a failure is fatal.
//
// API-specific clients live in subpackages:
//
//   - [github]: repository stars and last push time
//
// [cache.Cache]: github.com/matzehuels/altlist/pkg/cache.Cache
// [errors.RateLimitedError]: github.com/matzehuels/altlist/pkg/errors.RateLimitedError
// [github]: github.com/matzehuels/altlist/pkg/integrations/github
package integrations
