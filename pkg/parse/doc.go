// Package parse turns the awesome-selfhosted markdown list into entries.
//
// Parsing is a fold over the document's lines. [State] carries the current
// category and the entries collected so far; [Step] consumes one line and
// returns the next state. [Document] runs the fold over a whole document.
//
// Two kinds of lines matter:
//
//	### Communication - Email - Webmail
//	- [Roundcube](https://roundcube.net/) - Browser-based IMAP client. ([Source Code](https://github.com/roundcube/roundcubemail)) `GPL-3.0` `PHP`
//
// A third-level heading sets the category for every entry that follows.
// Headings for navigation ("back to top") or meta sections ("License")
// set the category too, but entries under them are dropped. Every other
// line is ignored.
//
// Entry descriptions are cleaned by [NormalizeDescription]: links, code
// spans and "Source Code"/"Demo" references are removed, and the
// terminal period is dropped.
package parse
