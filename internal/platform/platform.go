// Package platform detects the host OS family and which package managers
// are available on PATH. Detection only; toolup never drives an install
// from here.
package platform

import (
	"os"
	"os/exec"
	"runtime"
)

// Family is the coarse OS bucket toolup distinguishes.
type Family string

const (
	FamilyWindows Family = "windows"
	FamilyDebian  Family = "debian"
	FamilyLinux   Family = "linux"
	FamilyDarwin  Family = "darwin"
	FamilyUnknown Family = "unknown"
)

// Scope says whether a manager installs per-user or machine-wide.
type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

// Manager describes one known package manager.
type Manager struct {
	Name    string
	Command string
	Scope   Scope
}

// KnownManagers lists every manager toolup knows how to probe for.
func KnownManagers() []Manager {
	return []Manager{
		{Name: "scoop", Command: "scoop", Scope: ScopeUser},
		{Name: "winget", Command: "winget", Scope: ScopeAdmin},
		{Name: "apt", Command: "apt-get", Scope: ScopeAdmin},
		{Name: "snap", Command: "snap", Scope: ScopeAdmin},
		{Name: "homebrew", Command: "brew", Scope: ScopeUser},
		{Name: "nvm", Command: "nvm", Scope: ScopeUser},
		{Name: "rustup", Command: "rustup", Scope: ScopeUser},
	}
}

// Info is the result of a detection pass.
type Info struct {
	OS        Family
	Available []Manager
}

// Detect probes the current host.
func Detect() Info {
	info := Info{OS: DetectFamily()}
	for _, m := range KnownManagers() {
		if IsCommandAvailable(m.Command) {
			info.Available = append(info.Available, m)
		}
	}
	return info
}

// DetectFamily maps the runtime OS to a Family, distinguishing Debian-based
// Linux by the presence of /etc/debian_version.
func DetectFamily() Family {
	switch runtime.GOOS {
	case "windows":
		return FamilyWindows
	case "darwin":
		return FamilyDarwin
	case "linux":
		if _, err := os.Stat("/etc/debian_version"); err == nil {
			return FamilyDebian
		}
		return FamilyLinux
	default:
		return FamilyUnknown
	}
}

// IsCommandAvailable reports whether name resolves on PATH.
func IsCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
