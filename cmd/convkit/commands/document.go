package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/convkit/document"
	"github.com/erraggy/convkit/internal/cliutil"
)

// DocumentFlags contains flags for the document command
type DocumentFlags struct {
	Format string
	Title  string
	Text   string
	Output string
	Quiet  bool
}

// SetupDocumentFlags creates and configures a FlagSet for the document command.
func SetupDocumentFlags() (*flag.FlagSet, *DocumentFlags) {
	fs := flag.NewFlagSet("document", flag.ContinueOnError)
	flags := &DocumentFlags{}

	fs.StringVar(&flags.Format, "t", "", "export format: txt, html, csv, json or md (required)")
	fs.StringVar(&flags.Format, "to", "", "export format: txt, html, csv, json or md (required)")
	fs.StringVar(&flags.Title, "title", "", "document title for the json format (default: input file name)")
	fs.StringVar(&flags.Text, "text", "", "inline input instead of a file")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit document [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Export plain text as a TXT, HTML, CSV, JSON or Markdown document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit document -t html notes.txt -o notes.html\n")
		cliutil.Writef(fs.Output(), "  convkit document -t json --title 'Meeting' --text 'Agreed on Friday'\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - HTML input files are reduced to their visible text first\n")
	}

	return fs, flags
}

// HandleDocument executes the document command
func HandleDocument(args []string) error {
	fs, flags := SetupDocumentFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.Format == "" {
		fs.Usage()
		return fmt.Errorf("export format is required (use -t or --to)")
	}
	f, err := document.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	text, err := ReadInput("document", flags.Text, fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}

	var inputPath string
	if flags.Text == "" && fs.Arg(0) != StdinFilePath {
		inputPath = fs.Arg(0)
		text = document.ImportText(inputPath, text)
	}
	title := flags.Title
	if title == "" && inputPath != "" {
		title = filepath.Base(inputPath)
	}

	doc, err := document.Export(text, f, title)
	if err != nil {
		return err
	}
	if err := WriteResult(flags.Output, doc.Content); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		cliutil.Writef(os.Stderr, "Exported %s (%s) to: %s\n", document.OutputName(inputPath, doc.Extension), doc.MIMEType, flags.Output)
	}
	return nil
}
