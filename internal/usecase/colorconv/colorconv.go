// Package colorconv parses CSS-style color notations and reports every
// supported representation of the value.
package colorconv

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

var (
	reHex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	reRGB = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	reHSL = regexp.MustCompile(`^hsl\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*\)$`)
)

// Convert accepts #rgb, #rrggbb, rgb(r,g,b) or hsl(h,s%,l%) and emits the
// hex, RGB, HSL and HSV forms. Out-of-range components are an error, not
// clamped.
func Convert(input string) domain.ToolResult {
	c, err := parse(strings.TrimSpace(input))
	if err != nil {
		return domain.Failf("%v", err)
	}
	return render(c)
}

// Parse is the exported parser for callers that need the raw color.
func Parse(input string) (colorful.Color, error) {
	return parse(strings.TrimSpace(input))
}

func parse(s string) (colorful.Color, error) {
	switch {
	case reHex.MatchString(s):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb("):
		return parseRGB(s)
	case strings.HasPrefix(s, "hsl("):
		return parseHSL(s)
	default:
		return colorful.Color{}, fmt.Errorf("unrecognized color %q (expected #rrggbb, rgb(...) or hsl(...))", s)
	}
}

func parseHex(s string) (colorful.Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return colorful.Hex("#" + strings.ToLower(hex))
}

func parseRGB(s string) (colorful.Color, error) {
	m := reRGB.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, fmt.Errorf("malformed rgb() value %q", s)
	}

	var comps [3]int
	for i, part := range m[1:] {
		n, err := strconv.Atoi(part)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("malformed rgb() component %q", part)
		}
		if n < 0 || n > 255 {
			return colorful.Color{}, fmt.Errorf("rgb() component %d out of range [0,255]", n)
		}
		comps[i] = n
	}

	return colorful.Color{
		R: float64(comps[0]) / 255.0,
		G: float64(comps[1]) / 255.0,
		B: float64(comps[2]) / 255.0,
	}, nil
}

func parseHSL(s string) (colorful.Color, error) {
	m := reHSL.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, fmt.Errorf("malformed hsl() value %q", s)
	}

	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)

	if h < 0 || h > 360 {
		return colorful.Color{}, fmt.Errorf("hsl() hue %g out of range [0,360]", h)
	}
	if sat < 0 || sat > 100 {
		return colorful.Color{}, fmt.Errorf("hsl() saturation %g%% out of range [0,100]", sat)
	}
	if l < 0 || l > 100 {
		return colorful.Color{}, fmt.Errorf("hsl() lightness %g%% out of range [0,100]", l)
	}

	return colorful.Hsl(h, sat/100.0, l/100.0), nil
}

func render(c colorful.Color) domain.ToolResult {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	hh, hs, hl := c.Hsl()
	vh, vs, vv := c.Hsv()

	var sb strings.Builder
	fmt.Fprintf(&sb, "hex:  %s\n", c.Hex())
	fmt.Fprintf(&sb, "rgb:  rgb(%d, %d, %d)\n", r, g, b)
	fmt.Fprintf(&sb, "hsl:  hsl(%.0f, %.0f%%, %.0f%%)\n", hh, hs*100, hl*100)
	fmt.Fprintf(&sb, "hsv:  hsv(%.0f, %.0f%%, %.0f%%)\n", vh, vs*100, vv*100)

	res := domain.Ok(sb.String())
	res = res.WithMeta("r", strconv.Itoa(r))
	res = res.WithMeta("g", strconv.Itoa(g))
	res = res.WithMeta("b", strconv.Itoa(b))
	return res
}
