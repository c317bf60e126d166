// Package config builds the effective toolup store from layered sources:
// embedded defaults, the on-disk setup file, and TOOLUP_* environment
// overrides. Later layers win, mirroring the setup file's own
// last-write-wins rule.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "embed"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mfriesen/toolup/pkg/errors"
	"github.com/mfriesen/toolup/pkg/logging"
	"github.com/mfriesen/toolup/pkg/setupfile"
)

const (
	// FileName is the setup file toolup looks for by default.
	FileName = "toolup.cfg"
	// EnvPrefix marks environment variables that override file settings,
	// e.g. TOOLUP_General_MinimalInstall=true.
	EnvPrefix = "TOOLUP_"
)

//go:embed embedded/defaults.cfg
var defaultConfig []byte

// Options controls Load. The zero value loads the first setup file found on
// the default search path with the default dialect.
type Options struct {
	// Path is an explicit setup file path. When set, the file must exist.
	// When empty the search path is probed and a missing file is fine
	// (defaults and environment still apply).
	Path string

	// Dialect overrides the section dialect. Nil means the default.
	Dialect *setupfile.Dialect

	// SkipEnv disables the TOOLUP_* environment layer.
	SkipEnv bool
}

// Load builds the effective store. Layers, in override order: embedded
// defaults, the setup file, environment variables.
func Load(opts Options) (*setupfile.Store, error) {
	logger := logging.GetLogger("config")

	dialect := setupfile.Default()
	if opts.Dialect != nil {
		dialect = *opts.Dialect
	}

	k := koanf.New(".")

	// 1. Embedded defaults.
	defaults, err := setupfile.Parse(strings.NewReader(string(defaultConfig)), dialect)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse embedded defaults")
	}
	if err := k.Load(confmap.Provider(defaults.Nested(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. Setup file.
	path, err := resolvePath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), Parser(dialect)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load setup file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded setup file")
	} else {
		logger.Debug().Msg("No setup file found, using defaults")
	}

	// 3. Environment overrides.
	if !opts.SkipEnv {
		e := env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "_", ".")
		})
		if err := k.Load(e, nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment overrides")
		}
	}

	flat := make(map[string]string, len(k.Keys()))
	for key, value := range k.All() {
		flat[key] = fmt.Sprintf("%v", value)
	}
	return setupfile.FromMap(flat), nil
}

// resolvePath turns the explicit or searched path into the file to load.
// An explicit path that does not exist is the caller-facing "config file not
// found" failure; an empty search result just means defaults only.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", explicit)
		}
		return explicit, nil
	}
	for _, candidate := range SearchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// SearchPaths returns the locations probed for the setup file, in order:
// next to the executable, the XDG config dir, the working directory.
func SearchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), FileName))
	}
	paths = append(paths, filepath.Join(xdg.ConfigHome, "toolup", FileName))
	paths = append(paths, FileName)
	return paths
}

// DefaultPath returns the first existing search path, or the first candidate
// when none exists yet.
func DefaultPath() string {
	candidates := SearchPaths()
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}
