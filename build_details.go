package convkit

import (
	"fmt"
	"runtime"
	"strings"
)

// Build metadata, overridden at release time with
//
//	-ldflags "-X github.com/erraggy/convkit.version=1.2.3 -X github.com/erraggy/convkit.commit=abc1234"
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version, or "dev" for source builds.
func Version() string {
	return version
}

// Commit returns the git short hash the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns one "Label: value" line per build field, printed by
// "convkit version --long".
func BuildInfo() string {
	var b strings.Builder
	for _, f := range [][2]string{
		{"Version", Version()},
		{"Commit", Commit()},
		{"Build Time", BuildTime()},
		{"Go Version", GoVersion()},
	} {
		fmt.Fprintf(&b, "%-11s %s\n", f[0]+":", f[1])
	}
	return b.String()
}
