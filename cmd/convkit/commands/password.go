package commands

import (
	"errors"
	"flag"
	"os"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/password"
)

// PasswordFlags contains flags for the password command
type PasswordFlags struct {
	Length           int
	NoUppercase      bool
	NoLowercase      bool
	NoDigits         bool
	NoSymbols        bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	Passphrase       bool
	Check            string
	Quiet            bool
	Format           string
}

type passwordResult struct {
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Score    int    `json:"score" yaml:"score"`
	Label    string `json:"label" yaml:"label"`
}

// SetupPasswordFlags creates and configures a FlagSet for the password command.
func SetupPasswordFlags() (*flag.FlagSet, *PasswordFlags) {
	fs := flag.NewFlagSet("password", flag.ContinueOnError)
	flags := &PasswordFlags{}

	fs.IntVar(&flags.Length, "l", password.DefaultLength, "password length (4-128)")
	fs.IntVar(&flags.Length, "length", password.DefaultLength, "password length (4-128)")
	fs.BoolVar(&flags.NoUppercase, "no-upper", false, "leave out A-Z")
	fs.BoolVar(&flags.NoLowercase, "no-lower", false, "leave out a-z")
	fs.BoolVar(&flags.NoDigits, "no-digits", false, "leave out 0-9")
	fs.BoolVar(&flags.NoSymbols, "no-symbols", false, "leave out punctuation symbols")
	fs.BoolVar(&flags.ExcludeSimilar, "exclude-similar", false, "leave out look-alike characters such as l, 1, O and 0")
	fs.BoolVar(&flags.ExcludeAmbiguous, "exclude-ambiguous", false, "leave out brackets, quotes and other hard-to-type symbols")
	fs.BoolVar(&flags.Passphrase, "passphrase", false, "generate a four-word passphrase instead")
	fs.StringVar(&flags.Check, "check", "", "score this password instead of generating one")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print the password")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print the password")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit password [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate a random password or passphrase, or score an existing one.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit password\n")
		cliutil.Writef(fs.Output(), "  convkit password -l 32 --no-symbols\n")
		cliutil.Writef(fs.Output(), "  convkit password --passphrase -q\n")
		cliutil.Writef(fs.Output(), "  convkit password --check 'hunter2'\n")
	}

	return fs, flags
}

// HandlePassword executes the password command
func HandlePassword(args []string) error {
	fs, flags := SetupPasswordFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var result passwordResult
	if flags.Check != "" {
		s := password.Score(flags.Check)
		result = passwordResult{Score: s.Score, Label: s.Label}
	} else {
		var pw string
		var err error
		if flags.Passphrase {
			pw, err = password.Passphrase(nil)
		} else {
			pw, err = password.Generate(password.Options{
				Length:           flags.Length,
				Uppercase:        !flags.NoUppercase,
				Lowercase:        !flags.NoLowercase,
				Digits:           !flags.NoDigits,
				Symbols:          !flags.NoSymbols,
				ExcludeSimilar:   flags.ExcludeSimilar,
				ExcludeAmbiguous: flags.ExcludeAmbiguous,
			})
		}
		if err != nil {
			return err
		}
		s := password.Score(pw)
		result = passwordResult{Password: pw, Score: s.Score, Label: s.Label}
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	if flags.Quiet && result.Password != "" {
		cliutil.Writef(os.Stdout, "%s\n", result.Password)
		return nil
	}
	if result.Password != "" {
		cliutil.Field(os.Stdout, 8, "Password", result.Password)
	}
	cliutil.Field(os.Stdout, 8, "Strength", result.Label)
	return nil
}
