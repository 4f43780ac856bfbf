// Package palette moves color tables in and out of the process. It parses
// user-defined control points and writes tables as text, CSV, hex or PNG
// color bars.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/colormap/internal/colormap"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toColorful converts a table entry for use with go-colorful.
func toColorful(c colormap.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// toRGBA converts a table entry to an opaque image color.
func toRGBA(c colormap.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ParseStops parses a comma-separated list of control points of the form
// "ratio:#rrggbb[:linear|diverging]", e.g. "0:#3b4cc0:diverging,1:#b40426".
// Ratios must lie in [0,1] and be non-decreasing; at least two points are
// required. The segment type defaults to linear.
func ParseStops(s string) (colormap.Palette, error) {
	var pal colormap.Palette
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Split(field, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("stop %d (%q): want ratio:#rrggbb[:type]", i, field)
		}

		ratio, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("stop %d: bad ratio: %w", i, err)
		}
		if ratio < 0 || ratio > 1 {
			return nil, fmt.Errorf("stop %d: ratio %v outside [0,1]", i, ratio)
		}
		if n := len(pal); n > 0 && ratio < pal[n-1].Ratio {
			return nil, fmt.Errorf("stop %d: ratio %v is below the previous %v", i, ratio, pal[n-1].Ratio)
		}

		hex := parts[1]
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		r, g, b := c.RGB255()

		typ := colormap.Linear
		if len(parts) == 3 {
			switch strings.ToLower(parts[2]) {
			case "linear", "l":
			case "diverging", "d":
				typ = colormap.Diverging
			default:
				return nil, fmt.Errorf("stop %d: unknown segment type %q", i, parts[2])
			}
		}

		pal = append(pal, colormap.ControlPoint{
			Ratio: ratio,
			Color: colormap.RGB{R: r, G: g, B: b},
			Type:  typ,
		})
	}
	if len(pal) < 2 {
		return nil, fmt.Errorf("need at least 2 stops, got %d", len(pal))
	}
	return pal, nil
}

// Hex formats a table entry as #rrggbb.
func Hex(c colormap.RGB) string {
	return toColorful(c).Hex()
}
