package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/convkit/datetime"
	"github.com/erraggy/convkit/internal/cliutil"
)

// DatetimeFlags contains flags for the datetime command
type DatetimeFlags struct {
	Timestamp string
	Date      string
	Timezone  string
	Zones     bool
	Format    string
}

type datetimeResult struct {
	Unix     int64                     `json:"unix" yaml:"unix"`
	Human    string                    `json:"human" yaml:"human"`
	ISO      string                    `json:"iso" yaml:"iso"`
	Timezone string                    `json:"timezone" yaml:"timezone"`
	Zoned    string                    `json:"zoned" yaml:"zoned"`
	Formats  []datetime.Representation `json:"formats" yaml:"formats"`
}

// now is replaced in tests.
var now = time.Now

// SetupDatetimeFlags creates and configures a FlagSet for the datetime command.
func SetupDatetimeFlags() (*flag.FlagSet, *DatetimeFlags) {
	fs := flag.NewFlagSet("datetime", flag.ContinueOnError)
	flags := &DatetimeFlags{}

	fs.StringVar(&flags.Timestamp, "timestamp", "", "Unix timestamp in seconds")
	fs.StringVar(&flags.Date, "date", "", "date such as 2024-01-02T03:04 or RFC 3339")
	fs.StringVar(&flags.Timezone, "tz", "UTC", "IANA zone for the zoned rendering and for dates without an offset")
	fs.BoolVar(&flags.Zones, "zones", false, "list the preset time zones")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit datetime [flags]\n\n")
		cliutil.Writef(fs.Output(), "Convert between Unix timestamps, dates and time zones.\n")
		cliutil.Writef(fs.Output(), "With neither --timestamp nor --date the current time is shown.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit datetime --timestamp 1704164640\n")
		cliutil.Writef(fs.Output(), "  convkit datetime --date 2024-01-02T03:04 --tz America/New_York\n")
		cliutil.Writef(fs.Output(), "  convkit datetime --zones\n")
	}

	return fs, flags
}

// HandleDatetime executes the datetime command
func HandleDatetime(args []string) error {
	fs, flags := SetupDatetimeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("datetime command takes no arguments, use --timestamp or --date")
	}

	if flags.Zones {
		zones := datetime.Zones()
		if flags.Format != FormatText {
			return OutputStructured(zones, flags.Format)
		}
		for _, z := range zones {
			cliutil.Writef(os.Stdout, "  %-20s %s\n", z.ID, z.Label)
		}
		return nil
	}

	loc, err := time.LoadLocation(flags.Timezone)
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}

	var t time.Time
	switch {
	case flags.Timestamp != "" && flags.Date != "":
		return fmt.Errorf("datetime command takes either --timestamp or --date, not both")
	case flags.Timestamp != "":
		if t, err = datetime.ParseUnix(flags.Timestamp); err != nil {
			return err
		}
	case flags.Date != "":
		secs, err := datetime.ParseHuman(flags.Date, loc)
		if err != nil {
			return err
		}
		t = datetime.FromUnix(secs)
	default:
		t = now().UTC().Truncate(time.Second)
	}

	result := datetimeResult{
		Unix:     t.Unix(),
		Human:    datetime.HumanDate(t),
		ISO:      datetime.ISO(t),
		Timezone: flags.Timezone,
		Zoned:    datetime.InZone(t, flags.Timezone),
		Formats:  datetime.Formats(t),
	}
	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	cliutil.Field(os.Stdout, 8, "Unix", result.Unix)
	cliutil.Field(os.Stdout, 8, "Date", result.Human)
	cliutil.Field(os.Stdout, 8, "ISO", result.ISO)
	cliutil.Field(os.Stdout, 8, result.Timezone, result.Zoned)
	cliutil.Writef(os.Stdout, "\nFormats:\n")
	for _, f := range result.Formats {
		cliutil.Writef(os.Stdout, "  %-18s %s\n", f.Name, f.Value)
	}
	return nil
}
