// Package catalog defines the records altlist produces and the pure helpers
// that derive their fields.
//
// A [Tool] is one entry of the output artifact. Its slug, tagline and
// alternative slug are derived from other fields through [Slug] and
// [Tagline], so the same input always yields the same values. An
// [Override] is a partial Tool authored by hand and applied on top of a
// derived record with [Override.Apply].
//
// # Slugs
//
// [Slug] lowercases its input, replaces every run of characters outside
// [a-z0-9] with a single "-", and trims leading and trailing dashes:
//
//	catalog.Slug("Nextcloud Hub") // "nextcloud-hub"
//	catalog.Slug("  C++ / Qt  ")  // "c-qt"
//
// The front end derives category and alternative URLs with the same rule,
// so changing it invalidates published links.
package catalog
