// Package version holds the build version, set through -ldflags.
package version

// Version is the semantic version of corerpc.
const Version = "0.1.0"

var (
	// VersionWithMeta is Version with optional build metadata appended.
	VersionWithMeta = Version
	// Commit is the git commit the binary was built from.
	Commit = ""
	// Date is the date of Commit.
	Date = ""
)
