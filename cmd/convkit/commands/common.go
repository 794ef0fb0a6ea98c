// Package commands provides CLI command handlers for convkit.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/internal/fileio"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = fileio.StdPath

// stdin is swapped by tests that feed input through a reader.
var stdin io.Reader = os.Stdin

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(os.Stdout, "%s\n", strings.TrimSuffix(string(bytes), "\n"))
	return nil
}

// FormatInputPath returns a display-friendly path for an input file.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// ReadInput returns inline text when set, otherwise the contents of the single
// positional path ("-" reads stdin). Exactly one source must be given.
func ReadInput(command, text string, args []string) (string, error) {
	switch {
	case text != "" && len(args) > 0:
		return "", fmt.Errorf("%s command takes either --text or a file path, not both", command)
	case text != "":
		return text, nil
	case len(args) != 1:
		return "", fmt.Errorf("%s command requires exactly one file path, '-' for stdin, or --text", command)
	}
	if args[0] == StdinFilePath {
		return fileio.ReadAll(stdin, fileio.DefaultMaxSize)
	}
	return fileio.ReadText(args[0], fileio.DefaultMaxSize)
}

// WriteResult writes data to output, or stdout when output is empty or "-".
// A trailing newline is added for terminal output only.
func WriteResult(output string, data string) error {
	if output == "" || output == StdinFilePath {
		if !strings.HasSuffix(data, "\n") {
			data += "\n"
		}
	}
	if err := fileio.WriteOutput(output, []byte(data), os.Stdout); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}
