package setupfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mfriesen/toolup/pkg/errors"
)

// DiagnosticKind identifies why a line was skipped.
type DiagnosticKind int

const (
	// DiagUnknownSection is a header naming neither a flat section nor a
	// recognized umbrella. The previous section context stays in effect.
	DiagUnknownSection DiagnosticKind = iota
	// DiagOrphanAssignment is a key=value line before any section header.
	DiagOrphanAssignment
)

// Diagnostic describes a line the parser skipped for a reason the user may
// want surfaced. Diagnostics never fail a parse.
type Diagnostic struct {
	Line int
	Kind DiagnosticKind
	Text string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagUnknownSection:
		return fmt.Sprintf("line %d: unrecognized section header [%s]", d.Line, d.Text)
	case DiagOrphanAssignment:
		return fmt.Sprintf("line %d: assignment %q before any section header", d.Line, d.Text)
	default:
		return fmt.Sprintf("line %d: skipped %q", d.Line, d.Text)
	}
}

// Parse reads a setup file from r and returns the resulting store,
// discarding diagnostics. The only possible error comes from reading r;
// parsing itself is total over any text.
func Parse(r io.Reader, d Dialect) (*Store, error) {
	store, _, err := ParseWithDiagnostics(r, d)
	return store, err
}

// ParseWithDiagnostics is Parse plus the list of skipped-line diagnostics,
// in file order.
func ParseWithDiagnostics(r io.Reader, d Dialect) (*Store, []Diagnostic, error) {
	store := newStore()
	var diags []Diagnostic

	section, subsection := "", ""
	lineNo := 0

	// ReadString instead of a Scanner: lines have no length limit, and a
	// single oversized value must not abort the parse.
	reader := bufio.NewReader(r)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, nil, errors.Wrap(readErr, errors.ErrConfigParse, "failed to read setup file")
		}

		if raw != "" {
			lineNo++
			ln := classify(raw)

			switch ln.kind {
			case lineBlank, lineComment, lineOther:
				// Skipped without comment; leniency is part of the format.

			case lineHeader:
				sec, sub, ok := d.SplitHeader(ln.header)
				if !ok {
					diags = append(diags, Diagnostic{Line: lineNo, Kind: DiagUnknownSection, Text: ln.header})
				} else {
					section, subsection = sec, sub
				}

			case lineAssign:
				if section == "" {
					diags = append(diags, Diagnostic{Line: lineNo, Kind: DiagOrphanAssignment, Text: ln.key})
					break
				}
				qualified := section + "." + ln.key
				if subsection != "" {
					qualified = section + "." + subsection + "." + ln.key
				}
				store.values[qualified] = ln.value
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return store, diags, nil
}

// ParseFile opens path and parses it, discarding diagnostics.
func ParseFile(path string, d Dialect) (*Store, error) {
	store, _, err := ParseFileWithDiagnostics(path, d)
	return store, err
}

// ParseFileWithDiagnostics opens path and parses it. A missing or unreadable
// file is the one failure this package surfaces, as ErrConfigLoad.
func ParseFileWithDiagnostics(path string, d Dialect) (*Store, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", path)
	}
	defer func() { _ = f.Close() }()

	return ParseWithDiagnostics(f, d)
}
