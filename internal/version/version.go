package version

// Build information set by ldflags, e.g.
// -X github.com/frederic-klein/transient/internal/version.Version=1.2.3
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
