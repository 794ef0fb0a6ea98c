package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/units"
)

// UnitsFlags contains flags for the units command
type UnitsFlags struct {
	Category string
	List     bool
	Format   string
}

// unitsResult is the structured output of the units command.
type unitsResult struct {
	Category string `json:"category" yaml:"category"`
	Value    string `json:"value" yaml:"value"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Result   string `json:"result" yaml:"result"`
}

type unitEntry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SetupUnitsFlags creates and configures a FlagSet for the units command.
func SetupUnitsFlags() (*flag.FlagSet, *UnitsFlags) {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	flags := &UnitsFlags{}

	fs.StringVar(&flags.Category, "c", string(units.Length), "unit category: length, weight, temperature, area or volume")
	fs.StringVar(&flags.Category, "category", string(units.Length), "unit category: length, weight, temperature, area or volume")
	fs.BoolVar(&flags.List, "list", false, "list the units of the category")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit units [flags] <value> <from> <to>\n\n")
		cliutil.Writef(fs.Output(), "Convert a measurement between units of the same category.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit units 5 kilometer mile\n")
		cliutil.Writef(fs.Output(), "  convkit units -c temperature 100 celsius fahrenheit\n")
		cliutil.Writef(fs.Output(), "  convkit units -c volume --list\n")
	}

	return fs, flags
}

// HandleUnits executes the units command
func HandleUnits(args []string) error {
	fs, flags := SetupUnitsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	category, err := units.ParseCategory(flags.Category)
	if err != nil {
		return err
	}

	if flags.List {
		list, err := units.Units(category)
		if err != nil {
			return err
		}
		entries := make([]unitEntry, 0, len(list))
		for _, u := range list {
			entries = append(entries, unitEntry{ID: u.ID, Name: u.Name})
		}
		if flags.Format != FormatText {
			return OutputStructured(entries, flags.Format)
		}
		cliutil.Writef(os.Stdout, "%s units:\n", category.Name())
		for _, e := range entries {
			cliutil.Writef(os.Stdout, "  %-20s %s\n", e.ID, e.Name)
		}
		return nil
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("units command requires a value, a source unit and a target unit")
	}
	value, from, to := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	out, err := units.ConvertText(value, from, to, category)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(unitsResult{Category: string(category), Value: value, From: from, To: to, Result: out}, flags.Format)
	}
	cliutil.Writef(os.Stdout, "%s %s = %s %s\n", value, from, out, to)
	return nil
}
