// Package issues provides the notice type reported alongside a data conversion.
package issues

import (
	"fmt"

	"github.com/erraggy/convkit/internal/severity"
)

// Issue is a single notice about a conversion: a lossy mapping, a documented
// format limitation, or data the target could not carry.
type Issue struct {
	// Path locates the affected value (e.g., "root.users[0].tags")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context explains the limitation behind the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if path == "" {
		path = "document"
	}
	result := fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count tallies issues per severity.
func Count(list []Issue) (info, warning, critical int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, critical
}

// Without returns the issues whose severity differs from s.
func Without(list []Issue, s severity.Severity) []Issue {
	filtered := make([]Issue, 0, len(list))
	for _, issue := range list {
		if issue.Severity != s {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
