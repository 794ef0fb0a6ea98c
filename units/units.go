// Package units converts quantities between units of length, weight, area,
// volume and temperature.
//
// Linear categories convert through a per-unit factor relative to the
// category's base unit (meter, kilogram, square meter, liter):
//
//	result = value * factor(from) / factor(to)
//
// Temperature is affine and always converts through Celsius.
package units

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
)

// Category identifies a group of mutually convertible units.
type Category string

// Supported categories.
const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
	Area        Category = "area"
	Volume      Category = "volume"
)

// Temperature units.
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
)

// Unit is a single unit within a category.
type Unit struct {
	// ID is the lookup key, e.g. "square-meter"
	ID string
	// Name is the display name, e.g. "Square Meter"
	Name string
	// Factor converts one of this unit into the category's base unit.
	// Temperature units carry a factor of 1 and are converted separately.
	Factor float64
}

type categoryDef struct {
	name  string
	units []Unit
}

var categories = map[Category]categoryDef{
	Length: {name: "Length", units: []Unit{
		{"meter", "Meter", 1},
		{"kilometer", "Kilometer", 1000},
		{"centimeter", "Centimeter", 0.01},
		{"millimeter", "Millimeter", 0.001},
		{"inch", "Inch", 0.0254},
		{"foot", "Foot", 0.3048},
		{"yard", "Yard", 0.9144},
		{"mile", "Mile", 1609.34},
	}},
	Weight: {name: "Weight", units: []Unit{
		{"kilogram", "Kilogram", 1},
		{"gram", "Gram", 0.001},
		{"pound", "Pound", 0.453592},
		{"ounce", "Ounce", 0.0283495},
		{"ton", "Ton", 1000},
		{"stone", "Stone", 6.35029},
	}},
	Temperature: {name: "Temperature", units: []Unit{
		{Celsius, "Celsius", 1},
		{Fahrenheit, "Fahrenheit", 1},
		{Kelvin, "Kelvin", 1},
	}},
	Area: {name: "Area", units: []Unit{
		{"square-meter", "Square Meter", 1},
		{"square-kilometer", "Square Kilometer", 1000000},
		{"square-centimeter", "Square Centimeter", 0.0001},
		{"square-inch", "Square Inch", 0.00064516},
		{"square-foot", "Square Foot", 0.092903},
		{"acre", "Acre", 4046.86},
		{"hectare", "Hectare", 10000},
	}},
	Volume: {name: "Volume", units: []Unit{
		{"liter", "Liter", 1},
		{"milliliter", "Milliliter", 0.001},
		{"gallon", "Gallon (US)", 3.78541},
		{"quart", "Quart", 0.946353},
		{"pint", "Pint", 0.473176},
		{"cup", "Cup", 0.236588},
		{"fluid-ounce", "Fluid Ounce", 0.0295735},
	}},
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Length, Weight, Temperature, Area, Volume}
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := categories[c]; !ok {
		return "", &converrors.ValidationError{Field: "category", Value: name, Message: "unknown category"}
	}
	return c, nil
}

// Name returns the display name of the category, or "" when unknown.
func (c Category) Name() string {
	return categories[c].name
}

// Units returns the units of a category ordered by ascending factor.
// Units with equal factors keep their table order.
func Units(c Category) ([]Unit, error) {
	def, ok := categories[c]
	if !ok {
		return nil, &converrors.ValidationError{Field: "category", Value: string(c), Message: "unknown category"}
	}
	out := slices.Clone(def.units)
	slices.SortStableFunc(out, func(a, b Unit) int {
		switch {
		case a.Factor < b.Factor:
			return -1
		case a.Factor > b.Factor:
			return 1
		}
		return 0
	})
	return out, nil
}

// Lookup finds a unit by ID within a category.
func Lookup(c Category, id string) (Unit, error) {
	def, ok := categories[c]
	if !ok {
		return Unit{}, &converrors.ValidationError{Field: "category", Value: string(c), Message: "unknown category"}
	}
	want := strings.ToLower(strings.TrimSpace(id))
	for _, u := range def.units {
		if u.ID == want {
			return u, nil
		}
	}
	return Unit{}, &converrors.ValidationError{Field: "unit", Value: id, Message: "not a " + string(c) + " unit"}
}

// Convert converts v from one unit to another within category c.
func Convert(v float64, from, to string, c Category) (float64, error) {
	fromUnit, err := Lookup(c, from)
	if err != nil {
		return 0, err
	}
	toUnit, err := Lookup(c, to)
	if err != nil {
		return 0, err
	}
	if c == Temperature {
		return convertTemperature(v, fromUnit.ID, toUnit.ID), nil
	}
	if fromUnit.ID == toUnit.ID {
		return v, nil
	}
	return v * fromUnit.Factor / toUnit.Factor, nil
}

func convertTemperature(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	celsius := v
	switch from {
	case Fahrenheit:
		celsius = (v - 32) * 5 / 9
	case Kelvin:
		celsius = v - 273.15
	}
	switch to {
	case Fahrenheit:
		return celsius*9/5 + 32
	case Kelvin:
		return celsius + 273.15
	}
	return celsius
}

// Parse reads a numeric field as typed by a user.
func Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &converrors.ValidationError{Field: "value", Message: "a number is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &converrors.ValidationError{Field: "value", Value: text, Message: "not a number"}
	}
	return v, nil
}

// ConvertText parses text, converts it and formats the result.
func ConvertText(text, from, to string, c Category) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}
	out, err := Convert(v, from, to, c)
	if err != nil {
		return "", err
	}
	return FormatNumber(out), nil
}

// FormatNumber renders v with the shortest representation that reads back
// as the same float, switching to exponent notation only for very large or
// very small magnitudes.
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
