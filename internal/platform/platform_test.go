package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommandAvailable(t *testing.T) {
	assert.False(t, IsCommandAvailable("definitely-not-a-real-command-xyz"))
}

func TestIsCommandAvailableFindsPathEntry(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH probing test uses unix permissions")
	}

	dir := t.TempDir()
	fake := filepath.Join(dir, "faketool")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", dir)

	assert.True(t, IsCommandAvailable("faketool"))
	assert.False(t, IsCommandAvailable("othertool"))
}

func TestDetectFamily(t *testing.T) {
	family := DetectFamily()

	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, FamilyWindows, family)
	case "darwin":
		assert.Equal(t, FamilyDarwin, family)
	case "linux":
		assert.Contains(t, []Family{FamilyDebian, FamilyLinux}, family)
	default:
		assert.Equal(t, FamilyUnknown, family)
	}
}

func TestDetectOnlyReportsAvailableManagers(t *testing.T) {
	info := Detect()

	known := make(map[string]bool)
	for _, m := range KnownManagers() {
		known[m.Name] = true
	}
	for _, m := range info.Available {
		assert.True(t, known[m.Name], "detected manager %q must be a known one", m.Name)
		assert.True(t, IsCommandAvailable(m.Command))
	}
}
