// Package severity provides the severity levels attached to conversion notices.
//
// The levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

import "strings"

// Severity indicates how much a conversion notice matters to the caller.
type Severity int

const (
	// SeverityInfo marks a neutral note about a choice the converter made.
	SeverityInfo Severity = iota

	// SeverityWarning marks a lossy or best-effort transformation, such as
	// numbers becoming strings in CSV or nested data flattened to one level.
	SeverityWarning

	// SeverityCritical marks data that the target format cannot carry at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Parse maps a level name (case-insensitive) back to a Severity.
func Parse(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityInfo, false
	}
}
