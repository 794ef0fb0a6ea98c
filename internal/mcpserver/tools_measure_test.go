package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsConvertTool(t *testing.T) {
	tests := []struct {
		name  string
		input unitsInput
		want  string
	}{
		{"length", unitsInput{Category: "length", Value: "1", From: "kilometer", To: "meter"}, "1000"},
		{"temperature", unitsInput{Category: "Temperature", Value: "100", From: "celsius", To: "fahrenheit"}, "212"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleUnitsConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Result)
			assert.Empty(t, output.Units)
		})
	}
}

func TestUnitsConvertTool_ListUnits(t *testing.T) {
	_, output, err := handleUnitsConvert(context.Background(), &mcp.CallToolRequest{}, unitsInput{Category: "temperature"})
	require.NoError(t, err)
	require.Len(t, output.Units, 3)
	assert.Empty(t, output.Result)
}

func TestUnitsConvertTool_Errors(t *testing.T) {
	for name, input := range map[string]unitsInput{
		"unknown category": {Category: "time", Value: "1", From: "s", To: "ms"},
		"not a number":     {Category: "length", Value: "abc", From: "meter", To: "foot"},
		"wrong unit":       {Category: "length", Value: "1", From: "meter", To: "kilogram"},
	} {
		t.Run(name, func(t *testing.T) {
			result, _, err := handleUnitsConvert(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestCurrencyConvertTool(t *testing.T) {
	result, output, err := handleCurrencyConvert(context.Background(), &mcp.CallToolRequest{}, currencyInput{Amount: "100", From: "usd", To: "EUR"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "85.00", output.Result)
	assert.Equal(t, "1 USD = 0.8500 EUR", output.Rate)
	assert.Equal(t, "USD", output.From)

	_, output, err = handleCurrencyConvert(context.Background(), &mcp.CallToolRequest{}, currencyInput{})
	require.NoError(t, err)
	assert.Len(t, output.Currencies, 12)

	result, _, err = handleCurrencyConvert(context.Background(), &mcp.CallToolRequest{}, currencyInput{Amount: "1", From: "USD", To: "XYZ"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestColorConvertTool(t *testing.T) {
	tests := []struct {
		name  string
		input colorInput
		want  colorOutput
	}{
		{
			name:  "hex",
			input: colorInput{Hex: "#3B82F6"},
			want: colorOutput{
				Source: "hex", Hex: "#3b82f6", RGB: "rgb(59, 130, 246)", HSL: "hsl(217, 91%, 60%)",
				Red: 59, Green: 130, Blue: 246, Hue: 217, Sat: 91, Light: 60,
			},
		},
		{
			name:  "rgb",
			input: colorInput{RGB: &rgbInput{R: 255, G: 0, B: 0}},
			want: colorOutput{
				Source: "rgb", Hex: "#ff0000", RGB: "rgb(255, 0, 0)", HSL: "hsl(0, 100%, 50%)",
				Red: 255, Hue: 0, Sat: 100, Light: 50,
			},
		},
		{
			name:  "hsl",
			input: colorInput{HSL: &hslInput{H: 120, S: 100, L: 50}},
			want: colorOutput{
				Source: "hsl", Hex: "#00ff00", RGB: "rgb(0, 255, 0)", HSL: "hsl(120, 100%, 50%)",
				Green: 255, Hue: 120, Sat: 100, Light: 50,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleColorConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestColorConvertTool_ClampNotes(t *testing.T) {
	_, output, err := handleColorConvert(context.Background(), &mcp.CallToolRequest{}, colorInput{RGB: &rgbInput{R: 300, G: -5, B: 10}})
	require.NoError(t, err)
	assert.Equal(t, "#ff000a", output.Hex)
	require.Len(t, output.Notes, 1)
	assert.Contains(t, output.Notes[0], "rgb(255, 0, 10)")
}

func TestColorConvertTool_Errors(t *testing.T) {
	for name, input := range map[string]colorInput{
		"none":    {},
		"several": {Hex: "#ffffff", RGB: &rgbInput{}},
		"bad hex": {Hex: "#fff"},
	} {
		t.Run(name, func(t *testing.T) {
			result, _, err := handleColorConvert(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestNumberConvertTool(t *testing.T) {
	result, output, err := handleNumberConvert(context.Background(), &mcp.CallToolRequest{}, numberInput{Value: "ff", Base: "hex"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, numberOutput{Base: "hex", Decimal: "255", Binary: "11111111", Hex: "FF", Octal: "377"}, output)

	result, _, err = handleNumberConvert(context.Background(), &mcp.CallToolRequest{}, numberInput{Value: "102", Base: "binary"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
