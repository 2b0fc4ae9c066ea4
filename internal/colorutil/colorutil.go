// Package colorutil provides parsing, formatting, and adjustment helpers
// for the hex color notation used in style and theme definitions.
//
// Colors are written as "#rgb", "#rrggbb", or "#aarrggbb" (alpha-first,
// the notation stylesheet engines expect). Adjustment functions operate on
// the opaque channels and return lowercase "#rrggbb" strings.
package colorutil

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Parse parses a hex color string into a colorful.Color.
// Accepts "#rgb", "#rrggbb", and "#aarrggbb"; the alpha channel of the
// latter is discarded.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		// #aarrggbb: drop the alpha hex pair
		s = "#" + s[3:]
	}
	return colorful.Hex(s)
}

// IsValid reports whether s is a parseable hex color.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize returns the canonical lowercase "#rrggbb" form of s.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// WithOpacity converts an "#rrggbb" color to "#aarrggbb" by inserting the
// alpha hex pair directly after the '#'. Opacity is clamped to [0, 1].
// Strings without a leading '#' are returned unchanged.
func WithOpacity(hex string, opacity float64) string {
	if !strings.HasPrefix(hex, "#") {
		return hex
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	alpha := int(255 * opacity)
	return fmt.Sprintf("#%02x%s", alpha, hex[1:])
}

// Lighten increases the HSL lightness of the color by amount (0-1).
func Lighten(hex string, amount float64) (string, error) {
	return adjustLightness(hex, amount)
}

// Darken decreases the HSL lightness of the color by amount (0-1).
func Darken(hex string, amount float64) (string, error) {
	return adjustLightness(hex, -amount)
}

// Saturate increases the HSL saturation of the color by amount (0-1).
func Saturate(hex string, amount float64) (string, error) {
	return adjustSaturation(hex, amount)
}

// Desaturate decreases the HSL saturation of the color by amount (0-1).
func Desaturate(hex string, amount float64) (string, error) {
	return adjustSaturation(hex, -amount)
}

// Mix blends the color towards other. A fraction of 0 returns the color
// unchanged, 1 returns other.
func Mix(hex, other string, fraction float64) (string, error) {
	c1, err := Parse(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	c2, err := Parse(other)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", other, err)
	}
	return c1.BlendRgb(c2, clamp01(fraction)).Clamped().Hex(), nil
}

func adjustLightness(hex string, delta float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, clamp01(l+delta)).Clamped().Hex(), nil
}

func adjustSaturation(hex string, delta float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, clamp01(s+delta), l).Clamped().Hex(), nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
