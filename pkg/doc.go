// Package pkg provides the libraries behind altlist, a catalog of
// self-hosted alternatives to paid software.
//
// # Overview
//
// altlist turns the awesome-selfhosted markdown list into a JSON dataset
// that a static front end reads. The pkg directory is organized into three
// areas:
//
//  1. Domain logic: [parse], [classify], [enrich], [catalog]
//  2. Infrastructure: [cache], [config], [errors], [io], [observability]
//  3. External APIs: [integrations], [integrations/github], [source]
//
// [pipeline] ties them together.
//
// # Architecture
//
// The data flow of one build:
//
//	awesome-selfhosted README.md
//	         ↓
//	    [source] package (fetch, remote or local)
//	         ↓
//	    [parse] package (fold over lines → categorized entries)
//	         ↓
//	    per entry: [classify] → [enrich] → [overrides] merge
//	         ↓
//	    [io] package (data/items.json)
//
// # Main Packages
//
// [parse] - Recognizes category headings and list entries and normalizes
// descriptions. Parsing is an explicit fold ([parse.Step]) so category
// boundaries are testable line by line.
//
// [classify] - Matches an entry to the paid product it replaces using an
// ordered, versioned rule file (rules.toml, embedded).
//
// [enrich] - Adds GitHub stars and last push date for repository URLs,
// paced by a token-bucket throttle and backed by [cache].
//
// [catalog] - The output record, slugs, taglines, override merge and the
// category summary.
//
// [overrides] - Loads the hand-written override file, validating each entry
// against a JSON Schema.
//
// [cache] - File, Redis and no-op caches for API responses.
//
// # Common Workflows
//
// Build a catalog without network enrichment:
//
//	runner := pipeline.NewRunner(source.NewFetcher("", 0), nil, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Source:     "README.md",
//	    OutputPath: "data/items.json",
//	})
//
// Classify a single entry:
//
//	label := classify.Default().Classify("Mattermost", "Team chat", "Communication")
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test -tags integration ./pkg/...  # Include live GitHub API tests
//
// [parse]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/parse
// [parse.Step]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/parse#Step
// [classify]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/classify
// [enrich]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/enrich
// [catalog]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/catalog
// [overrides]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/overrides
// [cache]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/observability
// [integrations]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/integrations/github
// [source]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/source
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/altlist/pkg/pipeline
package pkg
