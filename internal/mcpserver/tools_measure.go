package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/convkit/color"
	"github.com/erraggy/convkit/currency"
	"github.com/erraggy/convkit/internal/options"
	"github.com/erraggy/convkit/numbase"
	"github.com/erraggy/convkit/units"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type unitsInput struct {
	Category string `json:"category"         jsonschema:"Unit category: length\\, weight\\, temperature\\, area or volume"`
	Value    string `json:"value,omitempty"  jsonschema:"The number to convert"`
	From     string `json:"from,omitempty"   jsonschema:"Source unit ID (e.g. meter\\, fahrenheit)"`
	To       string `json:"to,omitempty"     jsonschema:"Target unit ID"`
}

type unitSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type unitsOutput struct {
	Category string        `json:"category"`
	Value    string        `json:"value,omitempty"`
	From     string        `json:"from,omitempty"`
	To       string        `json:"to,omitempty"`
	Result   string        `json:"result,omitempty"`
	Units    []unitSummary `json:"units,omitempty"`
}

func handleUnitsConvert(_ context.Context, _ *mcp.CallToolRequest, input unitsInput) (*mcp.CallToolResult, unitsOutput, error) {
	c, err := units.ParseCategory(input.Category)
	if err != nil {
		return errResult(err), unitsOutput{}, nil
	}
	output := unitsOutput{Category: string(c)}

	if input.From == "" && input.To == "" {
		list, err := units.Units(c)
		if err != nil {
			return errResult(err), unitsOutput{}, nil
		}
		output.Units = makeSlice[unitSummary](len(list))
		for _, u := range list {
			output.Units = append(output.Units, unitSummary{ID: u.ID, Name: u.Name})
		}
		return nil, output, nil
	}

	result, err := units.ConvertText(input.Value, input.From, input.To, c)
	if err != nil {
		return errResult(err), unitsOutput{}, nil
	}
	output.Value = strings.TrimSpace(input.Value)
	output.From = strings.ToLower(input.From)
	output.To = strings.ToLower(input.To)
	output.Result = result
	return nil, output, nil
}

type currencyInput struct {
	Amount string `json:"amount,omitempty" jsonschema:"The amount to convert"`
	From   string `json:"from,omitempty"   jsonschema:"Source ISO 4217 code (e.g. USD)"`
	To     string `json:"to,omitempty"     jsonschema:"Target ISO 4217 code (e.g. EUR)"`
}

type currencySummary struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type currencyOutput struct {
	Amount     string            `json:"amount,omitempty"`
	From       string            `json:"from,omitempty"`
	To         string            `json:"to,omitempty"`
	Result     string            `json:"result,omitempty"`
	Rate       string            `json:"rate,omitempty"`
	Currencies []currencySummary `json:"currencies,omitempty"`
}

func handleCurrencyConvert(_ context.Context, _ *mcp.CallToolRequest, input currencyInput) (*mcp.CallToolResult, currencyOutput, error) {
	if input.Amount == "" && input.From == "" && input.To == "" {
		list := currency.Currencies()
		output := currencyOutput{Currencies: makeSlice[currencySummary](len(list))}
		for _, c := range list {
			output.Currencies = append(output.Currencies, currencySummary{Code: c.Code, Name: c.Name, Symbol: c.Symbol})
		}
		return nil, output, nil
	}

	result, err := currency.ConvertText(input.Amount, input.From, input.To)
	if err != nil {
		return errResult(err), currencyOutput{}, nil
	}
	rate, err := currency.Rate(input.From, input.To)
	if err != nil {
		return errResult(err), currencyOutput{}, nil
	}
	return nil, currencyOutput{
		Amount: strings.TrimSpace(input.Amount),
		From:   strings.ToUpper(input.From),
		To:     strings.ToUpper(input.To),
		Result: result,
		Rate:   currency.FormatRate(input.From, input.To, rate),
	}, nil
}

type rgbInput struct {
	R int `json:"r" jsonschema:"Red 0-255"`
	G int `json:"g" jsonschema:"Green 0-255"`
	B int `json:"b" jsonschema:"Blue 0-255"`
}

type hslInput struct {
	H int `json:"h" jsonschema:"Hue 0-360"`
	S int `json:"s" jsonschema:"Saturation 0-100"`
	L int `json:"l" jsonschema:"Lightness 0-100"`
}

type colorInput struct {
	Hex string    `json:"hex,omitempty" jsonschema:"Color as #rrggbb"`
	RGB *rgbInput `json:"rgb,omitempty" jsonschema:"Color as red/green/blue channels"`
	HSL *hslInput `json:"hsl,omitempty" jsonschema:"Color as hue/saturation/lightness"`
}

type colorOutput struct {
	Source string   `json:"source"`
	Hex    string   `json:"hex"`
	RGB    string   `json:"rgb"`
	HSL    string   `json:"hsl"`
	Red    int      `json:"red"`
	Green  int      `json:"green"`
	Blue   int      `json:"blue"`
	Hue    int      `json:"hue"`
	Sat    int      `json:"saturation"`
	Light  int      `json:"lightness"`
	Notes  []string `json:"notes,omitempty"`
}

func handleColorConvert(_ context.Context, _ *mcp.CallToolRequest, input colorInput) (*mcp.CallToolResult, colorOutput, error) {
	if err := options.ValidateSingleInputSource("color (use hex, rgb, or hsl)", input.Hex != "", input.RGB != nil, input.HSL != nil); err != nil {
		return errResult(err), colorOutput{}, nil
	}

	c := color.New()
	var notes []string
	switch {
	case input.Hex != "":
		if _, err := color.ParseHex(input.Hex); err != nil {
			return errResult(err), colorOutput{}, nil
		}
		c.SetHex(input.Hex)
	case input.RGB != nil:
		rgb := color.RGB{R: input.RGB.R, G: input.RGB.G, B: input.RGB.B}
		if rgb.Clamp() != rgb {
			notes = append(notes, fmt.Sprintf("channels clamped to %s", rgb.Clamp()))
		}
		c.SetRGB(rgb)
	default:
		hsl := color.HSL{H: input.HSL.H, S: input.HSL.S, L: input.HSL.L}
		if hsl.Clamp() != hsl {
			notes = append(notes, fmt.Sprintf("components clamped to %s", hsl.Clamp()))
		}
		c.SetHSL(hsl)
	}

	rgb, hsl := c.RGB(), c.HSL()
	return nil, colorOutput{
		Source: c.Source().String(),
		Hex:    c.Hex(),
		RGB:    rgb.String(),
		HSL:    hsl.String(),
		Red:    rgb.R,
		Green:  rgb.G,
		Blue:   rgb.B,
		Hue:    hsl.H,
		Sat:    hsl.S,
		Light:  hsl.L,
		Notes:  notes,
	}, nil
}

type numberInput struct {
	Value string `json:"value" jsonschema:"The number to convert"`
	Base  string `json:"base"  jsonschema:"Base of value: decimal\\, binary\\, hex or octal (or 10\\, 2\\, 16\\, 8)"`
}

type numberOutput struct {
	Base    string `json:"base"`
	Decimal string `json:"decimal"`
	Binary  string `json:"binary"`
	Hex     string `json:"hex"`
	Octal   string `json:"octal"`
}

func handleNumberConvert(_ context.Context, _ *mcp.CallToolRequest, input numberInput) (*mcp.CallToolResult, numberOutput, error) {
	b, err := numbase.ParseBase(input.Base)
	if err != nil {
		return errResult(err), numberOutput{}, nil
	}
	reps, err := numbase.Convert(input.Value, b)
	if err != nil {
		return errResult(err), numberOutput{}, nil
	}
	return nil, numberOutput{
		Base:    b.String(),
		Decimal: reps.Decimal,
		Binary:  reps.Binary,
		Hex:     reps.Hex,
		Octal:   reps.Octal,
	}, nil
}
