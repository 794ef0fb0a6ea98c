package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/markup"
)

// MarkdownFlags contains flags for the markdown command
type MarkdownFlags struct {
	ToMarkdown bool
	Text       string
	Template   string
	Output     string
}

// SetupMarkdownFlags creates and configures a FlagSet for the markdown command.
func SetupMarkdownFlags() (*flag.FlagSet, *MarkdownFlags) {
	fs := flag.NewFlagSet("markdown", flag.ContinueOnError)
	flags := &MarkdownFlags{}

	fs.BoolVar(&flags.ToMarkdown, "r", false, "reverse: convert HTML to Markdown")
	fs.BoolVar(&flags.ToMarkdown, "reverse", false, "reverse: convert HTML to Markdown")
	fs.StringVar(&flags.Text, "text", "", "inline input instead of a file")
	fs.StringVar(&flags.Template, "template", "", "print a starter Markdown document ("+strings.Join(markup.Templates(), ", ")+")")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit markdown [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert Markdown to HTML, or HTML back to Markdown with --reverse.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit markdown README.md -o README.html\n")
		cliutil.Writef(fs.Output(), "  convkit markdown -r page.html\n")
		cliutil.Writef(fs.Output(), "  convkit markdown --text '# Hello'\n")
		cliutil.Writef(fs.Output(), "  convkit markdown --template readme\n")
	}

	return fs, flags
}

// HandleMarkdown executes the markdown command
func HandleMarkdown(args []string) error {
	fs, flags := SetupMarkdownFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Template != "" {
		if flags.Text != "" || fs.NArg() > 0 {
			return fmt.Errorf("markdown command takes either --template or an input, not both")
		}
		doc, ok := markup.Template(flags.Template)
		if !ok {
			return fmt.Errorf("unknown template '%s'. Valid templates: %s", flags.Template, strings.Join(markup.Templates(), ", "))
		}
		return WriteResult(flags.Output, doc)
	}

	text, err := ReadInput("markdown", flags.Text, fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}

	if flags.ToMarkdown {
		return WriteResult(flags.Output, markup.HTMLToMarkdown(text))
	}
	return WriteResult(flags.Output, markup.MarkdownToHTML(text))
}
