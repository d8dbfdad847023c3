package util

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// cssNamedColors covers the names a traffic light configuration is likely to
// use. Anything else must be given as hex or rgb().
var cssNamedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"grey":   "#808080",
	"silver": "#c0c0c0",
	"red":    "#ff0000",
	"maroon": "#800000",
	"orange": "#ffa500",
	"amber":  "#ffbf00",
	"gold":   "#ffd700",
	"yellow": "#ffff00",
	"lime":   "#00ff00",
	"green":  "#008000",
	"teal":   "#008080",
	"cyan":   "#00ffff",
	"aqua":   "#00ffff",
	"blue":   "#0000ff",
	"navy":   "#000080",
	"purple": "#800080",
	"violet": "#ee82ee",
}

// ParseCSSColor understands named colors, #rgb, #rrggbb and rgb(r, g, b).
func ParseCSSColor(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := cssNamedColors[v]; ok {
		v = hex
	}

	switch {
	case strings.HasPrefix(v, "#") && len(v) == 4:
		v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
		return colorful.Hex(v)
	case strings.HasPrefix(v, "#"):
		return colorful.Hex(v)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(v[len("rgb(") : len(v)-1])
	}
	return colorful.Color{}, fmt.Errorf("unsupported color %q", s)
}

func parseRGBFunc(args string) (colorful.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("rgb() takes three components, got %d", len(parts))
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("rgb() component %q: %w", p, err)
		}
		rgb[i] = uint8(n)
	}
	return colorful.Color{
		R: float64(rgb[0]) / 255.0,
		G: float64(rgb[1]) / 255.0,
		B: float64(rgb[2]) / 255.0,
	}, nil
}

// IsColorDark reports whether text drawn on c should be light.
func IsColorDark(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l < 0.6
}
