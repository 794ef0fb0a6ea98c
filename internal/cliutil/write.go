// Package cliutil provides small output helpers shared by the convkit commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Header writes a title underlined with '=' followed by a blank line.
func Header(w io.Writer, title string) {
	Writef(w, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title))))
}

// Field writes an aligned "label: value" line. Labels are padded to width.
func Field(w io.Writer, width int, label string, value any) {
	Writef(w, "%-*s %v\n", width+1, label+":", value)
}
