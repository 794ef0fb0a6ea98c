package commands

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/textconv"
)

// TextFlags contains flags for the text command
type TextFlags struct {
	Transform string
	Text      string
	Count     bool
	Format    string
}

type textResult struct {
	Results []textconv.Result `json:"results,omitempty" yaml:"results,omitempty"`
	Counts  textconv.Counts   `json:"counts" yaml:"counts"`
}

// SetupTextFlags creates and configures a FlagSet for the text command.
func SetupTextFlags() (*flag.FlagSet, *TextFlags) {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	flags := &TextFlags{}

	fs.StringVar(&flags.Transform, "t", "", "run one transform: "+strings.Join(textconv.Names(), ", "))
	fs.StringVar(&flags.Transform, "transform", "", "run one transform: "+strings.Join(textconv.Names(), ", "))
	fs.StringVar(&flags.Text, "text", "", "inline input instead of a file")
	fs.BoolVar(&flags.Count, "count", false, "only print word, character and line counts")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit text [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Apply case, encoding and reversal transforms to text.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit text --text 'hello world'\n")
		cliutil.Writef(fs.Output(), "  convkit text -t snake --text 'Hello World'\n")
		cliutil.Writef(fs.Output(), "  echo 'aGVsbG8=' | convkit text -t base64-decode -\n")
		cliutil.Writef(fs.Output(), "  convkit text --count notes.txt\n")
	}

	return fs, flags
}

// HandleText executes the text command
func HandleText(args []string) error {
	fs, flags := SetupTextFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := ReadInput("text", flags.Text, fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}
	if flags.Text == "" {
		// Drop the trailing newline of file and pipe input.
		text = strings.TrimSuffix(text, "\n")
	}

	result := textResult{Counts: textconv.Count(text)}
	switch {
	case flags.Count:
	case flags.Transform != "":
		out, err := textconv.Apply(flags.Transform, text)
		if err != nil {
			return err
		}
		if flags.Format == FormatText {
			cliutil.Writef(os.Stdout, "%s\n", out)
			return nil
		}
		result.Results = []textconv.Result{{Name: strings.ToLower(flags.Transform), Value: out}}
	default:
		result.Results = textconv.All(text)
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	for _, r := range result.Results {
		cliutil.Field(os.Stdout, 13, r.Name, r.Value)
	}
	if len(result.Results) > 0 {
		cliutil.Writef(os.Stdout, "\n")
	}
	c := result.Counts
	cliutil.Writef(os.Stdout, "Words: %d  Characters: %d  Characters (no spaces): %d  Lines: %d\n",
		c.Words, c.Characters, c.CharactersNoSpaces, c.Lines)
	return nil
}
