package commands

import (
	"errors"
	"flag"
	"os"

	"github.com/erraggy/convkit/hashgen"
	"github.com/erraggy/convkit/internal/cliutil"
)

// HashFlags contains flags for the hash command
type HashFlags struct {
	Algorithm string
	Text      string
	Format    string
}

type hashResult struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest" yaml:"digest"`
}

// SetupHashFlags creates and configures a FlagSet for the hash command.
func SetupHashFlags() (*flag.FlagSet, *HashFlags) {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	flags := &HashFlags{}

	fs.StringVar(&flags.Algorithm, "a", "", "print only this digest: md5, sha1, sha256 or sha512")
	fs.StringVar(&flags.Algorithm, "algorithm", "", "print only this digest: md5, sha1, sha256 or sha512")
	fs.StringVar(&flags.Text, "text", "", "inline input instead of a file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit hash [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Compute MD5, SHA-1, SHA-256 and SHA-512 digests of text.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit hash --text abc\n")
		cliutil.Writef(fs.Output(), "  convkit hash -a sha256 release.txt\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Input is hashed exactly as read, including any trailing newline\n")
	}

	return fs, flags
}

// HandleHash executes the hash command
func HandleHash(args []string) error {
	fs, flags := SetupHashFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := ReadInput("hash", flags.Text, fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}
	sums := hashgen.Sum(text)

	if flags.Algorithm != "" {
		a, err := hashgen.ParseAlgorithm(flags.Algorithm)
		if err != nil {
			return err
		}
		if flags.Format != FormatText {
			return OutputStructured(hashResult{Algorithm: a.DisplayName(), Digest: sums.Get(a)}, flags.Format)
		}
		cliutil.Writef(os.Stdout, "%s\n", sums.Get(a))
		return nil
	}

	if flags.Format != FormatText {
		return OutputStructured(sums, flags.Format)
	}
	for _, a := range hashgen.Algorithms() {
		cliutil.Field(os.Stdout, 7, a.DisplayName(), sums.Get(a))
	}
	cliutil.Writef(os.Stdout, "\n%d bytes, %d characters\n", sums.Bytes, sums.Characters)
	return nil
}
