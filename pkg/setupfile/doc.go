// Package setupfile parses toolup's INI-style setup files into a flat,
// immutable key/value store.
//
// A setup file is a line-oriented text file made of section headers,
// key=value assignments and # comments:
//
//	# full-line comment
//	[General]
//	MinimalInstall=false
//
//	[UserLevel.CoreTools]
//	git=true          # inline comment
//	curl=false
//
// Nesting is not preserved as structure. Every assignment is stored under a
// qualified key built by dot-joining the active section, the optional
// subsection and the key, so the file above yields the keys
// "General.MinimalInstall", "UserLevel.CoreTools.git" and
// "UserLevel.CoreTools.curl". Later assignments to the same qualified key
// overwrite earlier ones.
//
// Parsing is lenient: malformed lines are skipped, never rejected. Lines
// that are skipped for a reason the user may care about (an unrecognized
// section header, an assignment before any header) are reported as
// Diagnostics by ParseWithDiagnostics; Parse discards them.
package setupfile
