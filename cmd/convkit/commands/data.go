package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/convkit"
	"github.com/erraggy/convkit/dataformat"
	"github.com/erraggy/convkit/internal/cliutil"
)

// DataFlags contains flags for the data command
type DataFlags struct {
	From       string
	To         string
	Output     string
	RootName   string
	FullYAML   bool
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Debug      bool
}

// SetupDataFlags creates and configures a FlagSet for the data command.
// Returns the FlagSet and a DataFlags struct with bound flag variables.
func SetupDataFlags() (*flag.FlagSet, *DataFlags) {
	fs := flag.NewFlagSet("data", flag.ContinueOnError)
	flags := &DataFlags{}

	fs.StringVar(&flags.From, "f", "", "source format: json, csv, xml or yaml (default: detected)")
	fs.StringVar(&flags.From, "from", "", "source format: json, csv, xml or yaml (default: detected)")
	fs.StringVar(&flags.To, "t", "", "target format: json, csv, xml or yaml (required)")
	fs.StringVar(&flags.To, "to", "", "target format: json, csv, xml or yaml (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.RootName, "root", dataformat.DefaultRootName, "XML root element name")
	fs.BoolVar(&flags.FullYAML, "full-yaml", false, "parse YAML input with the full YAML parser")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Debug, "debug", false, "log converter diagnostics to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit data [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert structured data between JSON, CSV, XML and YAML.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit data -t yaml people.json\n")
		cliutil.Writef(fs.Output(), "  convkit data -f csv -t xml --root people people.csv -o people.xml\n")
		cliutil.Writef(fs.Output(), "  cat config.yaml | convkit data -q -t json -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - CSV cells are read as strings; a CSV target needs a list of flat objects\n")
		cliutil.Writef(fs.Output(), "  - YAML input supports one level of nesting unless --full-yaml is set\n")
		cliutil.Writef(fs.Output(), "  - Warnings flag lossy steps such as flattened nesting or renamed XML keys\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed or issues found (in --strict mode)\n")
	}

	return fs, flags
}

// HandleData executes the data command
func HandleData(args []string) error {
	fs, flags := SetupDataFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("data command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target format is required (use -t or --to)")
	}
	to, err := dataformat.ParseFormat(flags.To, "output")
	if err != nil {
		return err
	}
	var from dataformat.Format
	if flags.From != "" {
		if from, err = dataformat.ParseFormat(flags.From, "input"); err != nil {
			return err
		}
	}

	opts := []dataformat.Option{
		dataformat.WithSourceFormat(from),
		dataformat.WithTargetFormat(to),
		dataformat.WithRootName(flags.RootName),
		dataformat.WithFullYAML(flags.FullYAML),
		dataformat.WithStrictMode(flags.Strict),
		dataformat.WithIncludeInfo(!flags.NoWarnings),
	}
	if flags.Debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, dataformat.WithLogger(dataformat.NewSlogAdapter(logger)))
	}
	if inputPath == StdinFilePath {
		opts = append(opts, dataformat.WithReader(stdin))
	} else {
		opts = append(opts, dataformat.WithFilePath(inputPath))
	}

	result, err := dataformat.ConvertWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatInputPath(inputPath), err)
	}

	if !flags.Quiet {
		cliutil.Header(os.Stderr, "Structured Data Converter")
		cliutil.Writef(os.Stderr, "convkit version: %s\n", convkit.Version())
		cliutil.Writef(os.Stderr, "Input: %s\n", FormatInputPath(inputPath))
		cliutil.Writef(os.Stderr, "Source Format: %s\n", result.SourceFormat)
		cliutil.Writef(os.Stderr, "Target Format: %s\n\n", result.TargetFormat)

		if len(result.Issues) > 0 {
			cliutil.Writef(os.Stderr, "Conversion Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				cliutil.Writef(os.Stderr, "  %s\n", issue.String())
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if result.Success {
			cliutil.Writef(os.Stderr, "✓ Conversion successful")
			if result.InfoCount > 0 || result.WarningCount > 0 {
				cliutil.Writef(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
			}
			cliutil.Writef(os.Stderr, "\n")
		}
	}

	if !result.Success {
		return fmt.Errorf("conversion completed with %d critical issue(s)", result.CriticalCount)
	}

	if err := WriteResult(flags.Output, result.Output); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
	}
	return nil
}
