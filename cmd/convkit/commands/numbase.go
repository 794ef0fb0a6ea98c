package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/numbase"
)

// NumbaseFlags contains flags for the numbase command
type NumbaseFlags struct {
	Base   string
	Format string
}

// SetupNumbaseFlags creates and configures a FlagSet for the numbase command.
func SetupNumbaseFlags() (*flag.FlagSet, *NumbaseFlags) {
	fs := flag.NewFlagSet("numbase", flag.ContinueOnError)
	flags := &NumbaseFlags{}

	fs.StringVar(&flags.Base, "b", "decimal", "base of the input: decimal, binary, hex or octal")
	fs.StringVar(&flags.Base, "base", "decimal", "base of the input: decimal, binary, hex or octal")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit numbase [flags] <value>\n\n")
		cliutil.Writef(fs.Output(), "Show a non-negative integer in decimal, binary, hex and octal.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit numbase 255\n")
		cliutil.Writef(fs.Output(), "  convkit numbase -b hex ff\n")
		cliutil.Writef(fs.Output(), "  convkit numbase -b binary 1010 --format json\n")
	}

	return fs, flags
}

// HandleNumbase executes the numbase command
func HandleNumbase(args []string) error {
	fs, flags := SetupNumbaseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("numbase command requires exactly one value")
	}

	base, err := numbase.ParseBase(flags.Base)
	if err != nil {
		return err
	}
	reps, err := numbase.Convert(fs.Arg(0), base)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(reps, flags.Format)
	}
	for _, b := range numbase.Bases() {
		cliutil.Field(os.Stdout, 7, b.String(), reps.Get(b))
	}
	return nil
}
