package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/convkit/document"
	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/internal/fileio"
)

// PrintFlags contains flags for the print command
type PrintFlags struct {
	Images      bool
	Text        string
	PageSize    string
	Orientation string
	FontFamily  string
	FontSize    int
	LineHeight  string
	Margin      int
	Fit         bool
	Output      string
}

// SetupPrintFlags creates and configures a FlagSet for the print command.
func SetupPrintFlags() (*flag.FlagSet, *PrintFlags) {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	flags := &PrintFlags{}

	fs.BoolVar(&flags.Images, "images", false, "treat the arguments as image files, one per page")
	fs.StringVar(&flags.Text, "text", "", "inline input instead of a file")
	fs.StringVar(&flags.PageSize, "page", "A4", "page size: A4, A3, Letter or Legal")
	fs.StringVar(&flags.Orientation, "orientation", "portrait", "portrait or landscape (images only)")
	fs.StringVar(&flags.FontFamily, "font", "Arial", "Arial, Times New Roman, Helvetica, Georgia or Courier New (text only)")
	fs.IntVar(&flags.FontSize, "font-size", 12, "font size in pixels, 6-72 (text only)")
	fs.StringVar(&flags.LineHeight, "line-height", "1.5", "line height multiplier (text only)")
	fs.IntVar(&flags.Margin, "margin", 0, "page margin in pixels, 1-200 (default: 40 for text, 20 for images)")
	fs.BoolVar(&flags.Fit, "fit", false, "scale images to fit the page (images only)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit print [flags] <file|->\n")
		cliutil.Writef(fs.Output(), "       convkit print --images [flags] <image>...\n\n")
		cliutil.Writef(fs.Output(), "Lay out text or images as a print-ready HTML page. Open the page in a\n")
		cliutil.Writef(fs.Output(), "browser and print it to save a PDF.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit print --font Georgia --font-size 14 notes.txt -o notes.html\n")
		cliutil.Writef(fs.Output(), "  convkit print --images --orientation landscape --fit a.png b.jpg -o album.html\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Lines starting with '# ' become headings and '- ' become list items\n")
	}

	return fs, flags
}

// HandlePrint executes the print command
func HandlePrint(args []string) error {
	fs, flags := SetupPrintFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var page string
	if flags.Images {
		if flags.Text != "" {
			return fmt.Errorf("print command takes either --text or --images, not both")
		}
		if fs.NArg() == 0 {
			fs.Usage()
			return fmt.Errorf("print command requires at least one image file with --images")
		}
		urls := make([]string, 0, fs.NArg())
		for _, path := range fs.Args() {
			u, err := fileio.ReadDataURL(path, fileio.DefaultMaxSize)
			if err != nil {
				return err
			}
			urls = append(urls, u)
		}
		var err error
		page, err = document.ImagesHTML(urls, document.ImageSettings{
			PageSize:    flags.PageSize,
			Orientation: flags.Orientation,
			Margin:      flags.Margin,
			Fit:         flags.Fit,
		})
		if err != nil {
			return err
		}
	} else {
		text, err := ReadInput("print", flags.Text, fs.Args())
		if err != nil {
			fs.Usage()
			return err
		}
		page, err = document.PrintHTML(text, document.Settings{
			FontFamily: flags.FontFamily,
			FontSize:   flags.FontSize,
			LineHeight: flags.LineHeight,
			Margin:     flags.Margin,
			PageSize:   flags.PageSize,
		})
		if err != nil {
			return err
		}
	}

	if err := WriteResult(flags.Output, page); err != nil {
		return err
	}
	if flags.Output != "" {
		cliutil.Writef(os.Stderr, "Print page written to: %s\n", flags.Output)
	}
	return nil
}
