package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/mfriesen/toolup/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/mfriesen/toolup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/mfriesen/toolup/internal/version.Date={{.Date}}
)
