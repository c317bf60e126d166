package setupfile

import "strings"

// Dialect names the section headers a setup file may use.
//
// Flat sections ("General"-style global settings) never carry a subsection.
// Umbrella sections may appear bare ("[UserLevel]") or with a dotted
// subsection suffix ("[UserLevel.CoreTools]"); the suffix is kept intact as
// a single token even when it contains further dots.
type Dialect struct {
	flat     []string
	umbrella []string
}

// NewDialect builds a dialect from explicit flat and umbrella section names.
func NewDialect(flat, umbrella []string) Dialect {
	return Dialect{
		flat:     append([]string(nil), flat...),
		umbrella: append([]string(nil), umbrella...),
	}
}

// Default returns the canonical toolup dialect: the General and Shell flat
// sections plus the UserLevel and AdminLevel umbrellas.
func Default() Dialect {
	return NewDialect(
		[]string{"General", "Shell"},
		[]string{"UserLevel", "AdminLevel"},
	)
}

// IsFlat reports whether name is one of the dialect's flat sections.
func (d Dialect) IsFlat(name string) bool {
	for _, f := range d.flat {
		if name == f {
			return true
		}
	}
	return false
}

// IsUmbrella reports whether name is one of the dialect's umbrella sections.
func (d Dialect) IsUmbrella(name string) bool {
	for _, u := range d.umbrella {
		if name == u {
			return true
		}
	}
	return false
}

// SplitHeader resolves the contents of a "[...]" header against the dialect.
// It returns the section, the subsection ("" for none) and whether the
// header was recognized at all. Unrecognized headers must leave the parser's
// current section context untouched, so ok=false carries no partial result.
func (d Dialect) SplitHeader(contents string) (section, subsection string, ok bool) {
	if d.IsFlat(contents) {
		return contents, "", true
	}
	for _, u := range d.umbrella {
		rest, found := strings.CutPrefix(contents, u+".")
		if found && rest != "" {
			return u, rest, true
		}
	}
	if d.IsUmbrella(contents) {
		return contents, "", true
	}
	return "", "", false
}
