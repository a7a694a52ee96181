// Package github fetches repository popularity and activity from the GitHub
// REST API (https://api.github.com).
//
// # Usage
//
//	client := github.NewClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//
//	owner, repo, ok := github.ParseRepoURL("https://github.com/mattermost/mattermost")
//	if ok {
//	    stats, cached, err := client.Fetch(ctx, owner, repo, false)
//	    ...
//	}
//
// # Authentication
//
// A token is optional. Anonymous clients are limited to 60 requests/hour,
// authenticated ones to 5000. Rate limit responses (403, 429) surface as
// [errors.RateLimitedError].
//
// # Caching and pacing
//
// Responses are cached through the [cache.Cache] given in [Options]. A
// [integrations.Limiter] in [Options] is waited on before each request that
// actually goes to the network; cache hits are free.
//
// [errors.RateLimitedError]: github.com/matzehuels/altlist/pkg/errors.RateLimitedError
// [cache.Cache]: github.com/matzehuels/altlist/pkg/cache.Cache
package github
