package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfriesen/toolup/pkg/errors"
)

// runCommand executes the CLI with args and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd := NewRootCmd()
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolup.cfg")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestHelpUsesFormattedHeadings(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)

	// Section headings go through the boldUpper template func; off a
	// terminal that means plain uppercase.
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "AVAILABLE COMMANDS:")
	assert.Contains(t, out, "FLAGS:")
}

func TestGetCommand(t *testing.T) {
	path := writeConfig(t, "[UserLevel.Extra]\nzoxide=true\n")

	out, err := runCommand(t, "get", "UserLevel.Extra.zoxide", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestGetCommandDefault(t *testing.T) {
	path := writeConfig(t, "")

	out, err := runCommand(t, "get", "UserLevel.Extra.missing", "--default", "nope", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "nope\n", out)
}

func TestGetCommandMissingConfigFile(t *testing.T) {
	_, err := runCommand(t, "get", "General.MinimalInstall", "--config",
		filepath.Join(t.TempDir(), "nope.cfg"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestEnabledCommand(t *testing.T) {
	path := writeConfig(t, "[UserLevel.Extra]\non=true\noff=false\n")

	out, err := runCommand(t, "enabled", "UserLevel.Extra.on", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = runCommand(t, "enabled", "UserLevel.Extra.off", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolDisabled))
	assert.Equal(t, "false\n", out)

	// Absent keys gate to false.
	_, err = runCommand(t, "enabled", "UserLevel.Extra.absent", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolDisabled))
}

func TestListCommandSectionFilter(t *testing.T) {
	path := writeConfig(t, "[UserLevel.Extra]\nzoxide=true\n")

	out, err := runCommand(t, "list", "--section", "UserLevel.Extra", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "UserLevel.Extra.zoxide")
	assert.NotContains(t, out, "General.MinimalInstall")
}

func TestCheckCommand(t *testing.T) {
	clean := writeConfig(t, "[General]\nMinimalInstall=false\n")
	out, err := runCommand(t, "check", "--config", clean)
	require.NoError(t, err)
	assert.Contains(t, out, "no problems found")

	dirty := writeConfig(t, "orphan=true\n[Bogus]\nk=v\n")
	out, err = runCommand(t, "check", "--config", dirty)
	require.NoError(t, err)
	assert.Contains(t, out, "unrecognized section header")
	assert.Contains(t, out, "before any section header")
}

func TestCheckCommandStrict(t *testing.T) {
	dirty := writeConfig(t, "[Bogus]\nk=v\n")

	_, err := runCommand(t, "check", "--strict", "--config", dirty)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestExportCommandJSON(t *testing.T) {
	path := writeConfig(t, "[General]\nMinimalInstall=true\n")

	out, err := runCommand(t, "export", "--format", "json", "--config", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	general := decoded["General"].(map[string]any)
	assert.Equal(t, "true", general["MinimalInstall"])
}

func TestExportCommandBadFormat(t *testing.T) {
	path := writeConfig(t, "")

	_, err := runCommand(t, "export", "--format", "xml", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDocsCommandListsTopics(t *testing.T) {
	out, err := runCommand(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "format")
	assert.Contains(t, out, "layering")
}

func TestDocsCommandUnknownTopic(t *testing.T) {
	_, err := runCommand(t, "docs", "no-such-topic")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
