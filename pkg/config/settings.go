package config

import "github.com/mfriesen/toolup/pkg/setupfile"

// Settings is the typed view of the [General] section. The store keeps
// everything as strings; this decodes the conventional boolean literals
// once for callers that branch on them repeatedly.
type Settings struct {
	MinimalInstall bool `mapstructure:"MinimalInstall"`
	Interactive    bool `mapstructure:"Interactive"`
}

// LoadSettings decodes the [General] section from an already-loaded store.
func LoadSettings(store *setupfile.Store) (*Settings, error) {
	var s Settings
	if err := store.Decode("General", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
