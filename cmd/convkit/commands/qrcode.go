package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/qrcode"
)

// QRCodeFlags contains flags for the qrcode command
type QRCodeFlags struct {
	Size         int
	ECC          string
	Endpoint     string
	WiFiSSID     string
	WiFiPassword string
	WiFiSecurity string
	Presets      bool
	Format       string
}

type qrcodeResult struct {
	URL     string `json:"url" yaml:"url"`
	Payload string `json:"payload" yaml:"payload"`
}

// SetupQRCodeFlags creates and configures a FlagSet for the qrcode command.
func SetupQRCodeFlags() (*flag.FlagSet, *QRCodeFlags) {
	fs := flag.NewFlagSet("qrcode", flag.ContinueOnError)
	flags := &QRCodeFlags{}

	fs.IntVar(&flags.Size, "s", qrcode.DefaultSize, fmt.Sprintf("image edge in pixels (%d-%d)", qrcode.MinSize, qrcode.MaxSize))
	fs.IntVar(&flags.Size, "size", qrcode.DefaultSize, fmt.Sprintf("image edge in pixels (%d-%d)", qrcode.MinSize, qrcode.MaxSize))
	fs.StringVar(&flags.ECC, "e", string(qrcode.ECCMedium), "error correction level: L, M, Q or H")
	fs.StringVar(&flags.ECC, "ecc", string(qrcode.ECCMedium), "error correction level: L, M, Q or H")
	fs.StringVar(&flags.Endpoint, "endpoint", qrcode.DefaultEndpoint, "QR image service URL")
	fs.StringVar(&flags.WiFiSSID, "wifi-ssid", "", "encode a WiFi network with this SSID")
	fs.StringVar(&flags.WiFiPassword, "wifi-password", "", "WiFi password")
	fs.StringVar(&flags.WiFiSecurity, "wifi-security", "WPA", "WiFi security: WPA, WEP or nopass")
	fs.BoolVar(&flags.Presets, "presets", false, "list sample payloads, sizes and error correction levels")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convkit qrcode [flags] <text>\n\n")
		cliutil.Writef(fs.Output(), "Build the image URL of a QR code for text, a link or a WiFi network.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convkit qrcode https://example.com\n")
		cliutil.Writef(fs.Output(), "  convkit qrcode -s 400 -e H 'hello world'\n")
		cliutil.Writef(fs.Output(), "  convkit qrcode --wifi-ssid HomeNet --wifi-password secret\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - No request is made; open the URL to fetch the image\n")
	}

	return fs, flags
}

// HandleQRCode executes the qrcode command
func HandleQRCode(args []string) error {
	fs, flags := SetupQRCodeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if flags.Presets {
		return outputQRPresets(flags.Format)
	}

	payload := strings.Join(fs.Args(), " ")
	if flags.WiFiSSID != "" {
		if payload != "" {
			return fmt.Errorf("qrcode command takes either text or --wifi-ssid, not both")
		}
		payload = qrcode.WiFi(flags.WiFiSecurity, flags.WiFiSSID, flags.WiFiPassword)
	}
	if payload == "" {
		fs.Usage()
		return fmt.Errorf("qrcode command requires text to encode or --wifi-ssid")
	}

	u, err := qrcode.BuildURL(qrcode.Request{
		Text:     payload,
		Size:     flags.Size,
		ECC:      qrcode.ECC(flags.ECC),
		Endpoint: flags.Endpoint,
	})
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(qrcodeResult{URL: u, Payload: payload}, flags.Format)
	}
	cliutil.Writef(os.Stdout, "%s\n", u)
	return nil
}

func outputQRPresets(format string) error {
	presets := struct {
		Presets []qrcode.Preset `json:"presets" yaml:"presets"`
		Sizes   []int           `json:"sizes" yaml:"sizes"`
		Levels  []qrcode.Level  `json:"levels" yaml:"levels"`
	}{qrcode.Presets(), qrcode.Sizes(), qrcode.Levels()}

	if format != FormatText {
		return OutputStructured(presets, format)
	}
	cliutil.Writef(os.Stdout, "Presets:\n")
	for _, p := range presets.Presets {
		cliutil.Writef(os.Stdout, "  %-9s %s\n", p.Label, p.Value)
	}
	cliutil.Writef(os.Stdout, "\nSizes: %v\n\nError correction:\n", presets.Sizes)
	for _, l := range presets.Levels {
		cliutil.Writef(os.Stdout, "  %s  %-9s %s\n", l.ECC, l.Name, l.Recovery)
	}
	return nil
}
