package commands

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/erraggy/convkit/catalog"
	"github.com/erraggy/convkit/internal/cliutil"
)

// CatalogFlags contains flags for the catalog command
type CatalogFlags struct {
	Format string
}

// SetupCatalogFlags creates and configures a FlagSet for the catalog command.
func SetupCatalogFlags() (*flag.FlagSet, *CatalogFlags) {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	flags := &CatalogFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit catalog [flags] [query]\n\n")
		cliutil.Writef(fs.Output(), "List the available converters, or those matching a query.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit catalog\n")
		cliutil.Writef(fs.Output(), "  convkit catalog yaml\n")
		cliutil.Writef(fs.Output(), "  convkit catalog --format json security\n")
	}

	return fs, flags
}

// HandleCatalog executes the catalog command
func HandleCatalog(args []string) error {
	fs, flags := SetupCatalogFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	query := strings.Join(fs.Args(), " ")
	entries := catalog.Search(query)

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	if len(entries) == 0 {
		cliutil.Writef(os.Stdout, "No converters match %q\n", query)
		return nil
	}
	for _, e := range entries {
		cliutil.Writef(os.Stdout, "%-26s convkit %-9s %s\n", e.Title, e.Command, e.Description)
	}
	return nil
}
