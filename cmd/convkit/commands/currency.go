package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/convkit/currency"
	"github.com/erraggy/convkit/internal/cliutil"
)

// CurrencyFlags contains flags for the currency command
type CurrencyFlags struct {
	List   bool
	Format string
}

type currencyResult struct {
	Amount string `json:"amount" yaml:"amount"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Result string `json:"result" yaml:"result"`
	Rate   string `json:"rate" yaml:"rate"`
}

type currencyEntry struct {
	Code   string  `json:"code" yaml:"code"`
	Name   string  `json:"name" yaml:"name"`
	Symbol string  `json:"symbol" yaml:"symbol"`
	PerUSD float64 `json:"per_usd" yaml:"per_usd"`
}

// SetupCurrencyFlags creates and configures a FlagSet for the currency command.
func SetupCurrencyFlags() (*flag.FlagSet, *CurrencyFlags) {
	fs := flag.NewFlagSet("currency", flag.ContinueOnError)
	flags := &CurrencyFlags{}

	fs.BoolVar(&flags.List, "list", false, "list the supported currencies and their sample rates")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit currency [flags] <amount> <from> <to>\n\n")
		cliutil.Writef(fs.Output(), "Convert an amount between currencies using fixed sample rates.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit currency 100 USD EUR\n")
		cliutil.Writef(fs.Output(), "  convkit currency --list\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Rates are illustrative and never fetched from a live source\n")
	}

	return fs, flags
}

// HandleCurrency executes the currency command
func HandleCurrency(args []string) error {
	fs, flags := SetupCurrencyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if flags.List {
		list := currency.Currencies()
		entries := make([]currencyEntry, 0, len(list))
		for _, c := range list {
			entries = append(entries, currencyEntry{Code: c.Code, Name: c.Name, Symbol: c.Symbol, PerUSD: c.PerUSD})
		}
		if flags.Format != FormatText {
			return OutputStructured(entries, flags.Format)
		}
		for _, e := range entries {
			cliutil.Writef(os.Stdout, "  %s  %-4s %-20s %s\n", e.Code, e.Symbol, e.Name, currency.FormatRate("USD", e.Code, e.PerUSD))
		}
		return nil
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("currency command requires an amount, a source currency and a target currency")
	}
	amount, from, to := fs.Arg(0), strings.ToUpper(fs.Arg(1)), strings.ToUpper(fs.Arg(2))

	out, err := currency.ConvertText(amount, from, to)
	if err != nil {
		return err
	}
	rate, err := currency.Rate(from, to)
	if err != nil {
		return err
	}

	result := currencyResult{Amount: amount, From: from, To: to, Result: out, Rate: currency.FormatRate(from, to, rate)}
	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	cliutil.Writef(os.Stdout, "%s %s = %s %s\n", amount, from, out, to)
	cliutil.Writef(os.Stdout, "Rate: %s\n", result.Rate)
	return nil
}
