package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfriesen/toolup/pkg/setupfile"
)

func TestParserUnmarshal(t *testing.T) {
	p := Parser(setupfile.Default())

	m, err := p.Unmarshal([]byte(`
[General]
MinimalInstall=false
[UserLevel.CoreTools]
git=true
`))
	require.NoError(t, err)

	general, ok := m["General"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "false", general["MinimalInstall"])

	userLevel, ok := m["UserLevel"].(map[string]any)
	require.True(t, ok)
	coreTools, ok := userLevel["CoreTools"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "true", coreTools["git"])
}

func TestParserMarshalRoundTrip(t *testing.T) {
	p := Parser(setupfile.Default())

	original := map[string]string{
		"General.MinimalInstall":            "false",
		"UserLevel.CoreTools.git":           "true",
		"UserLevel.Languages.Python.extras": "false",
		"AdminLevel.CoreTools.ripgrep":      "true",
	}

	nested, err := p.Unmarshal(EncodeCfg(original))
	require.NoError(t, err)

	encoded, err := p.Marshal(nested)
	require.NoError(t, err)

	reparsed, err := setupfile.Parse(strings.NewReader(string(encoded)), setupfile.Default())
	require.NoError(t, err)
	assert.Equal(t, original, reparsed.All())
}

func TestEncodeCfgDeterministic(t *testing.T) {
	flat := map[string]string{
		"General.B": "2",
		"General.A": "1",
		"Shell.X":   "y",
	}
	first := string(EncodeCfg(flat))
	second := string(EncodeCfg(flat))
	assert.Equal(t, first, second)
	assert.True(t, strings.Index(first, "[General]") < strings.Index(first, "[Shell]"))
	assert.True(t, strings.Index(first, "A=1") < strings.Index(first, "B=2"))
}

func TestEncodeCfgNonDialectSectionDropsOnReparse(t *testing.T) {
	out := EncodeCfg(map[string]string{
		"Foo.bar":   "x",
		"General.k": "v",
	})

	// The foreign header is emitted but the dialect does not recognize it,
	// so a re-parse keeps only the recognized section.
	assert.Contains(t, string(out), "[Foo]")

	reparsed, err := setupfile.Parse(strings.NewReader(string(out)), setupfile.Default())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"General.k": "v"}, reparsed.All())
}

func TestEncodeCfgSkipsSectionlessKeys(t *testing.T) {
	out := string(EncodeCfg(map[string]string{
		"orphan":    "x",
		"General.k": "v",
	}))
	assert.NotContains(t, out, "orphan")
	assert.Contains(t, out, "k=v")
}
