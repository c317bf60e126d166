package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Resolve developer-tooling setup configuration"
	MsgRootLong  = `toolup reads an INI-style setup file describing which developer tools
should be installed on this machine and resolves qualified keys like
UserLevel.CoreTools.git to their configured values.

Install scripts gate on these values; toolup itself never installs anything.`

	MsgGetShort      = "Print the value of a qualified key"
	MsgGetLong       = "Get resolves a qualified key (e.g. UserLevel.CoreTools.git) against the loaded configuration and prints its value, or the default when the key is absent."
	MsgEnabledShort  = "Exit 0 if a key resolves to \"true\""
	MsgEnabledLong   = "Enabled is the boolean gate used by install scripts: it prints the resolved value and exits 0 only when it is the literal \"true\". Absent keys count as \"false\"."
	MsgListShort     = "List all resolved keys and values"
	MsgCheckShort    = "Parse the setup file and report skipped lines"
	MsgCheckLong     = "Check parses the setup file leniently and prints a diagnostic for every line that was skipped: unrecognized section headers and assignments appearing before any section. With --strict, any diagnostic makes the command fail."
	MsgExportShort   = "Export the resolved configuration"
	MsgExportLong    = "Export renders the fully resolved configuration (defaults, setup file and environment overrides merged) in a machine-readable format."
	MsgManagersShort = "Show the detected platform and available package managers"
	MsgDocsShort     = "Display documentation topics"
	MsgDocsLong      = "Display a list of documentation topics, or render one of them. Topics cover the setup file format and how layered overrides are resolved."

	// Status messages
	MsgNoKeys        = "No keys found."
	MsgCheckClean    = "%s: %d keys, no problems found\n"
	MsgCheckProblems = "%s: %d keys, %d skipped lines\n"
	MsgNoManagers    = "No known package managers found on PATH."
	MsgMinimalNotice = "Minimal install mode is enabled; install scripts skip optional tools."
	MsgDocsAvailable = "Available topics:"
	MsgDocsHint      = "\nUse \"toolup docs <topic>\" to read one."

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to the setup file (default: searched next to the binary, then XDG config, then the working directory)"
	MsgFlagDefault = "Value to return when the key is absent"
	MsgFlagSection = "Only show keys under this section prefix"
	MsgFlagStrict  = "Fail when any line was skipped"
	MsgFlagFormat  = "Output format: toml, yaml, json or cfg"
)

// Templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
