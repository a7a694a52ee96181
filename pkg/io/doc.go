// Package io reads and writes the altlist output artifact.
//
// # Overview
//
// The artifact is a single JSON array of [catalog.Tool] records, indented
// with two spaces and kept in parse order:
//
//	[
//	  {
//	    "id": "0b6c7f6e-...",
//	    "name": "Mattermost",
//	    "slug": "mattermost",
//	    "tagline": "Team chat",
//	    "description": "Team chat",
//	    "paid_alternative": "Slack",
//	    "paid_alternative_slug": "slack",
//	    "license": "MIT",
//	    "category": "Communication - Custom Communication Systems",
//	    "website_url": "https://github.com/mattermost/mattermost",
//	    "stars": 31000,
//	    "last_updated": "2024-05-01T10:00:00Z"
//	  }
//	]
//
// stars and last_updated are omitted for records without repository
// metadata.
//
// # Writing
//
// [ExportJSON] writes to a temporary file in the destination directory and
// renames it into place, so readers never observe a half-written artifact
// and a failed run leaves the previous artifact untouched.
//
// # Reading
//
// [ImportJSON] loads an artifact back, for reporting on a previous run.
package io
