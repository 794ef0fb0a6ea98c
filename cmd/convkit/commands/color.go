package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/color"
	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/internal/options"
)

// ColorFlags contains flags for the color command
type ColorFlags struct {
	RGB    string
	HSL    string
	Format string
}

type colorResult struct {
	Source string `json:"source" yaml:"source"`
	Hex    string `json:"hex" yaml:"hex"`
	RGB    string `json:"rgb" yaml:"rgb"`
	HSL    string `json:"hsl" yaml:"hsl"`
}

// SetupColorFlags creates and configures a FlagSet for the color command.
func SetupColorFlags() (*flag.FlagSet, *ColorFlags) {
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	flags := &ColorFlags{}

	fs.StringVar(&flags.RGB, "rgb", "", "red,green,blue channels 0-255 (e.g. 59,130,246)")
	fs.StringVar(&flags.HSL, "hsl", "", "hue,saturation,lightness (e.g. 217,91,60)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit color [flags] [#rrggbb]\n\n")
		cliutil.Writef(fs.Output(), "Show a color in HEX, RGB and HSL notation.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit color '#3b82f6'\n")
		cliutil.Writef(fs.Output(), "  convkit color --rgb 255,0,0\n")
		cliutil.Writef(fs.Output(), "  convkit color --hsl 120,100,50 --format json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Out-of-range components are clamped\n")
	}

	return fs, flags
}

// HandleColor executes the color command
func HandleColor(args []string) error {
	fs, flags := SetupColorFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("color command takes at most one HEX value")
	}
	if err := options.ValidateSingleInputSource("color (use a HEX argument, --rgb, or --hsl)",
		fs.NArg() == 1, flags.RGB != "", flags.HSL != ""); err != nil {
		return err
	}

	c := color.New()
	switch {
	case fs.NArg() == 1:
		if _, err := color.ParseHex(fs.Arg(0)); err != nil {
			return err
		}
		c.SetHex(fs.Arg(0))
	case flags.RGB != "":
		v, err := parseTriplet("rgb", flags.RGB)
		if err != nil {
			return err
		}
		c.SetRGB(color.RGB{R: v[0], G: v[1], B: v[2]})
	default:
		v, err := parseTriplet("hsl", flags.HSL)
		if err != nil {
			return err
		}
		c.SetHSL(color.HSL{H: v[0], S: v[1], L: v[2]})
	}

	result := colorResult{Source: c.Source().String(), Hex: c.Hex(), RGB: c.RGB().String(), HSL: c.HSL().String()}
	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	cliutil.Field(os.Stdout, 3, "HEX", result.Hex)
	cliutil.Field(os.Stdout, 3, "RGB", result.RGB)
	cliutil.Field(os.Stdout, 3, "HSL", result.HSL)
	return nil
}

// parseTriplet reads three comma-separated integers.
func parseTriplet(name, s string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("--%s expects three comma-separated integers, got '%s'", name, s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("--%s component %d: %w", name, i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
