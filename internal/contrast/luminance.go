// Package contrast implements the WCAG 2.x contrast math and everything
// derived from it: pair generation, pass/fail classification and the
// palette-level guidance signals.
package contrast

import (
	"fmt"
	"math"

	"github.com/balkashynov/wcagpairs/internal/models"
)

const (
	// MinRatio is the contrast of a color against itself
	MinRatio = 1.0
	// MaxRatio is the contrast of black against white
	MaxRatio = 21.0
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1]
func RelativeLuminance(c models.Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an 8-bit sRGB channel to linear light
func linearize(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between a and b. Argument order does not matter.
func Ratio(a, b models.Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// RoundRatio rounds to the two decimals shown to users
func RoundRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// FormatRatio renders a ratio as "17.74:1"
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
