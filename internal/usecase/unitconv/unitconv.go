// Package unitconv converts values between units of the same category.
//
// Linear categories use factor tables relative to a base unit; temperature
// is the affine special case.
package unitconv

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Options supply units when the input holds only a value.
type Options struct {
	From string
	To   string
}

type category struct {
	name string
	// factor maps unit -> multiplier into the category's base unit.
	factor map[string]float64
}

var categories = []category{
	{
		name: "length",
		factor: map[string]float64{
			"mm": 0.001, "cm": 0.01, "m": 1, "km": 1000,
			"in": 0.0254, "ft": 0.3048, "yd": 0.9144, "mi": 1609.344,
		},
	},
	{
		name: "mass",
		factor: map[string]float64{
			"mg": 1e-6, "g": 1e-3, "kg": 1, "t": 1000,
			"oz": 0.028349523125, "lb": 0.45359237,
		},
	},
	{
		name: "data",
		factor: map[string]float64{
			"B": 1, "KB": 1e3, "MB": 1e6, "GB": 1e9, "TB": 1e12,
			"KiB": 1024, "MiB": 1 << 20, "GiB": 1 << 30, "TiB": 1 << 40,
		},
	},
	{
		name: "duration",
		factor: map[string]float64{
			"ns": 1e-9, "us": 1e-6, "ms": 1e-3, "s": 1,
			"min": 60, "h": 3600, "d": 86400,
		},
	},
}

var temperatureUnits = []string{"C", "F", "K"}

// Categories lists category names, temperature included.
func Categories() []string {
	names := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		names = append(names, c.name)
	}
	names = append(names, "temperature")
	sort.Strings(names)
	return names
}

// Units lists the units of one category.
func Units(cat string) ([]string, error) {
	if strings.EqualFold(cat, "temperature") {
		return append([]string(nil), temperatureUnits...), nil
	}
	for _, c := range categories {
		if strings.EqualFold(c.name, cat) {
			units := make([]string, 0, len(c.factor))
			for u := range c.factor {
				units = append(units, u)
			}
			sort.Strings(units)
			return units, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q (known: %s)", cat, strings.Join(Categories(), ", "))
}

// ConvertValue converts value from one unit to another. Both units must
// belong to the same category.
func ConvertValue(value float64, from, to string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("value must be finite")
	}

	if isTemperature(from) || isTemperature(to) {
		if !isTemperature(from) || !isTemperature(to) {
			return 0, fmt.Errorf("cannot convert between %q and %q: different categories", from, to)
		}
		return convertTemperature(value, strings.ToUpper(from), strings.ToUpper(to))
	}

	catFrom, fFrom, okFrom := lookup(from)
	catTo, fTo, okTo := lookup(to)
	if !okFrom {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	if !okTo {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if catFrom != catTo {
		return 0, fmt.Errorf("cannot convert between %q (%s) and %q (%s)", from, catFrom, to, catTo)
	}

	return value * fFrom / fTo, nil
}

// Convert accepts either "<value> <from> <to>" or a bare value with units in
// opts, and renders the conversion.
func Convert(input string, opts Options) domain.ToolResult {
	fields := strings.Fields(strings.TrimSpace(input))

	var rawValue, from, to string
	switch {
	case len(fields) == 3:
		rawValue, from, to = fields[0], fields[1], fields[2]
	case len(fields) == 1 && opts.From != "" && opts.To != "":
		rawValue, from, to = fields[0], opts.From, opts.To
	default:
		return domain.Failf("expected \"<value> <from> <to>\" (e.g. \"12.5 km mi\")")
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return domain.Failf("invalid value %q", rawValue)
	}

	out, err := ConvertValue(value, from, to)
	if err != nil {
		return domain.Failf("%v", err)
	}

	formatted := strconv.FormatFloat(out, 'g', 10, 64)
	res := domain.Ok(fmt.Sprintf("%s %s = %s %s\n", rawValue, from, formatted, to))
	res = res.WithMeta("value", strconv.FormatFloat(out, 'g', -1, 64))
	res = res.WithMeta("from", from)
	res = res.WithMeta("to", to)
	return res
}

func lookup(unit string) (cat string, factor float64, ok bool) {
	for _, c := range categories {
		// Data units are case-sensitive (MB vs MiB); the rest match lowercase.
		if c.name == "data" {
			if f, exists := c.factor[unit]; exists {
				return c.name, f, true
			}
			continue
		}
		if f, exists := c.factor[strings.ToLower(unit)]; exists {
			return c.name, f, true
		}
	}
	return "", 0, false
}

func isTemperature(unit string) bool {
	u := strings.ToUpper(unit)
	return u == "C" || u == "F" || u == "K"
}

func convertTemperature(value float64, from, to string) (float64, error) {
	// Normalize through Celsius.
	var c float64
	switch from {
	case "C":
		c = value
	case "F":
		c = (value - 32) * 5 / 9
	case "K":
		c = value - 273.15
	}

	switch to {
	case "C":
		return c, nil
	case "F":
		return c*9/5 + 32, nil
	case "K":
		return c + 273.15, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q", to)
}
