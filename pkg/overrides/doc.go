// Package overrides loads hand-maintained corrections for catalog records.
//
// The override file is a JSON object keyed by tool slug. Each value is a
// partial record whose fields replace the derived ones (see
// [catalog.Override.Apply]):
//
//	{
//	  "mattermost": {"license": "AGPL-3.0", "logo": "/logos/mattermost.svg"}
//	}
//
// Loading never fails the run. A missing file yields an empty [Set]; an
// unreadable or malformed file is logged and yields an empty [Set]; an
// individual entry that does not match the override schema is logged and
// skipped while the remaining entries are kept.
package overrides
