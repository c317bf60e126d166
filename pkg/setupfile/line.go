package setupfile

import "strings"

// lineKind tags the result of classifying a single raw line.
type lineKind int

const (
	// lineBlank is a line that is empty after trimming.
	lineBlank lineKind = iota
	// lineComment is a line whose first non-whitespace character is '#'.
	lineComment
	// lineHeader is a section header: "[...]" with non-empty brackets.
	lineHeader
	// lineAssign is a key=value assignment.
	lineAssign
	// lineOther is anything else; such lines are skipped.
	lineOther
)

// scannedLine is the tagged result of classify. Only the fields relevant
// to the kind are set: header for lineHeader, key/value for lineAssign.
type scannedLine struct {
	kind   lineKind
	header string
	key    string
	value  string
}

// classify inspects one raw line and returns its tagged form. It is a pure
// function of the line text and carries no file-level state, so the grammar
// can be tested one line at a time.
//
// The rules mirror the original scripts exactly:
//
//	header:     trimmed line matching ^\[(.+)\]$
//	assignment: trimmed line matching ^([^=]+)=(.+)$, split at the first '='
//
// In an assignment the key is whitespace-trimmed, and the value has
// everything from the first '#' removed before trimming. There is no escape
// mechanism: a literal '#' can never appear in a value.
func classify(raw string) scannedLine {
	s := strings.TrimSpace(raw)

	if s == "" {
		return scannedLine{kind: lineBlank}
	}
	if s[0] == '#' {
		return scannedLine{kind: lineComment}
	}
	if len(s) >= 3 && s[0] == '[' && s[len(s)-1] == ']' {
		return scannedLine{kind: lineHeader, header: s[1 : len(s)-1]}
	}
	if i := strings.IndexByte(s, '='); i > 0 && i < len(s)-1 {
		value := s[i+1:]
		if j := strings.IndexByte(value, '#'); j >= 0 {
			value = value[:j]
		}
		return scannedLine{
			kind:  lineAssign,
			key:   strings.TrimSpace(s[:i]),
			value: strings.TrimSpace(value),
		}
	}
	return scannedLine{kind: lineOther}
}
