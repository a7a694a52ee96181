// Package enrich attaches repository popularity and activity to catalog
// entries whose website is a GitHub repository.
//
// Enrichment never fails a run. An ineligible URL, a missing repository, a
// network error, or a rate limit response all yield "no metadata"; only the
// rate limit case is logged as a warning.
//
// Requests are sequential and paced by a [Throttle]. The throttle is waited
// on only when a request actually goes to the network: ineligible URLs and
// cache hits cost nothing.
package enrich
