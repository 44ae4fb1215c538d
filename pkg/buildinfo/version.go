// Package buildinfo carries the version metadata stamped into the
// glyphgrid binary at link time.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/pictolab/glyphgrid/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/pictolab/glyphgrid/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/pictolab/glyphgrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version. Development builds report "dev".
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the version, commit and build date on separate lines,
// as printed by "glyphgrid version".
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template for the root command.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
