// Package export renders a resolved store in machine-readable formats, for
// piping into other tooling or for inspecting the effective configuration.
package export

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mfriesen/toolup/pkg/config"
	"github.com/mfriesen/toolup/pkg/errors"
	"github.com/mfriesen/toolup/pkg/setupfile"
)

// Format names a supported output encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	// FormatCfg is the canonical setup file text itself: sorted headers,
	// sorted keys, comments gone.
	FormatCfg Format = "cfg"
)

// Formats lists every supported format name.
func Formats() []Format {
	return []Format{FormatTOML, FormatYAML, FormatJSON, FormatCfg}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown export format %q (supported: %v)", name, Formats())
}

// Render encodes the store in the given format. TOML, YAML and JSON rebuild
// the section nesting; cfg keeps the flat grammar.
func Render(store *setupfile.Store, f Format) ([]byte, error) {
	switch f {
	case FormatTOML:
		out, err := toml.Marshal(store.Nested())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(store.Nested())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(store.Nested(), "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
		}
		return append(out, '\n'), nil
	case FormatCfg:
		return config.EncodeCfg(store.All()), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown export format %q", f)
	}
}
