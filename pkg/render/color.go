// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrNoColorStops is returned when a gradient has no stops.
	ErrNoColorStops = errors.New("render: gradient needs at least one color stop")
	// ErrBadColor is returned for a malformed color stop definition.
	ErrBadColor = errors.New("render: malformed color stop")
)

// Stop is one radial gradient color stop. Offset runs from 0 (center)
// to 1 (outer radius).
type Stop struct {
	Offset float64
	Color  color.Color
}

// ParseStops parses definitions of the form "offset:#rrggbb" or
// "offset:#rrggbb/alpha" (alpha in 0..1). The result is sorted by offset.
func ParseStops(defs []string) ([]Stop, error) {
	if len(defs) == 0 {
		return nil, ErrNoColorStops
	}
	stops := make([]Stop, 0, len(defs))
	for _, def := range defs {
		s, err := parseStop(def)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	return stops, nil
}

func parseStop(def string) (Stop, error) {
	offsetPart, colorPart, ok := strings.Cut(strings.TrimSpace(def), ":")
	if !ok {
		return Stop{}, fmt.Errorf("%w: %q has no ':'", ErrBadColor, def)
	}
	offset, err := strconv.ParseFloat(strings.TrimSpace(offsetPart), 64)
	if err != nil || offset < 0 || offset > 1 {
		return Stop{}, fmt.Errorf("%w: offset in %q must be within 0..1", ErrBadColor, def)
	}

	alpha := 1.0
	hex, alphaPart, hasAlpha := strings.Cut(strings.TrimSpace(colorPart), "/")
	if hasAlpha {
		alpha, err = strconv.ParseFloat(strings.TrimSpace(alphaPart), 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return Stop{}, fmt.Errorf("%w: alpha in %q must be within 0..1", ErrBadColor, def)
		}
	}
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return Stop{}, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	return Stop{Offset: offset, Color: withAlpha(c, alpha)}, nil
}

// withAlpha возвращает неpremultiplied цвет с заданной прозрачностью.
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
