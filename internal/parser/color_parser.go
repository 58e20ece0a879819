package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/wcagpairs/internal/models"
)

var (
	hexRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)
	rgbRegex = regexp.MustCompile(`(?i)^rgb\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hslRegex = regexp.MustCompile(`(?i)^hsl\s*\(\s*(\d+)\s*,\s*(\d+)%?\s*,\s*(\d+)%?\s*\)$`)
)

// ParseFailure describes a token that is not a color in any supported notation
type ParseFailure struct {
	Token  string
	Reason string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("could not parse %q: %s", e.Token, e.Reason)
}

// ParseColor converts a single color token to a Color.
// Supported notations (case insensitive, surrounding whitespace ignored):
// - "#RRGGBB" or "RRGGBB"
// - "rgb(r, g, b)" with integer channels 0-255
// - "hsl(h, s%, l%)" with integer degrees and percentages (% optional)
func ParseColor(text string) (models.Color, error) {
	trimmed := strings.TrimSpace(text)

	if m := hexRegex.FindStringSubmatch(trimmed); m != nil {
		return parseHexDigits(m[1]), nil
	}

	if m := rgbRegex.FindStringSubmatch(trimmed); m != nil {
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return models.Color{}, &ParseFailure{Token: trimmed, Reason: "rgb channels must be integers between 0 and 255"}
			}
			channels[i] = uint8(v)
		}
		return models.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
	}

	if m := hslRegex.FindStringSubmatch(trimmed); m != nil {
		h, errH := strconv.Atoi(m[1])
		s, errS := strconv.Atoi(m[2])
		l, errL := strconv.Atoi(m[3])
		if errH != nil || errS != nil || errL != nil {
			return models.Color{}, &ParseFailure{Token: trimmed, Reason: "hsl components must be integers"}
		}
		return hslToColor(h, s, l), nil
	}

	return models.Color{}, &ParseFailure{Token: trimmed, Reason: "expected #RRGGBB, rgb(r, g, b) or hsl(h, s%, l%)"}
}

// parseHexDigits decodes exactly six already-validated hex digits
func parseHexDigits(digits string) models.Color {
	v, _ := strconv.ParseUint(digits, 16, 32)
	return models.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// hslToColor wraps the hue into [0,360) and clamps saturation and lightness
// to [0,100] before converting.
func hslToColor(h, s, l int) models.Color {
	hue := math.Mod(float64(h), 360)
	sat := clampPercent(s)
	light := clampPercent(l)

	r, g, b := colorful.Hsl(hue, sat, light).Clamped().RGB255()
	return models.Color{R: r, G: g, B: b}
}

func clampPercent(v int) float64 {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return float64(v) / 100
}
