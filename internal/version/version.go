package version

// Version is the release version, overridden at build time via
// -ldflags "-X github.com/ovrica/sget/internal/version.Version=..."
var Version = "0.4.1"
