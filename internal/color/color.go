package color

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all derived values (hex strings, channel gains) come from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#ffd8a0" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#ffd8a0".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Gain returns the per-channel multipliers that map white onto c,
// each in the range 0.0–1.0.
func (c Color) Gain() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// Kelvin converts a color temperature to RGB multipliers in the range
// 0.0–1.0 using the Tanner Helland approximation. From 6600K upwards red is
// fully on; at or below 1900K blue is fully off.
func Kelvin(kelvin float64) (r, g, b float64) {
	temp := kelvin / 100.0

	// Red
	if temp <= 66 {
		r = 1.0
	} else {
		r = 329.698727446 * math.Pow(temp-60, -0.1332047592) / 255.0
	}

	// Green
	if temp <= 66 {
		g = (99.4708025861*math.Log(temp) - 161.1195681661) / 255.0
	} else {
		g = 288.1221695283 * math.Pow(temp-60, -0.0755148492) / 255.0
	}

	// Blue
	if temp >= 66 {
		b = 1.0
	} else if temp <= 19 {
		b = 0.0
	} else {
		b = (138.5177312231*math.Log(temp-10) - 305.0447927307) / 255.0
	}

	return clamp(r), clamp(g), clamp(b)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
