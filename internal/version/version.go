// Package version reports the build of coursedash. Values are set at build
// time with -ldflags "-X".
package version

var (
	// Version is the release tag.
	Version = "development"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = ""
)

// String returns the version, with the commit appended when known and the
// build date in parentheses when set.
func String() string {
	s := Version
	if Commit != "unknown" && Commit != "" {
		s += "+" + Commit
	}
	if Date != "" {
		s += " (" + Date + ")"
	}
	return s
}
