package contrast

import (
	"math"
	"testing"

	"github.com/balkashynov/wcagpairs/internal/models"
)

func mustHex(t *testing.T, hex string) models.Color {
	t.Helper()
	var r, g, b uint8
	for i, dst := range []*uint8{&r, &g, &b} {
		var v uint8
		for _, ch := range hex[1+2*i : 3+2*i] {
			v <<= 4
			switch {
			case ch >= '0' && ch <= '9':
				v |= uint8(ch - '0')
			case ch >= 'a' && ch <= 'f':
				v |= uint8(ch-'a') + 10
			default:
				t.Fatalf("bad hex %q", hex)
			}
		}
		*dst = v
	}
	return models.Color{R: r, G: g, B: b}
}

func palette(t *testing.T, hexes ...string) []models.Color {
	t.Helper()
	colors := make([]models.Color, len(hexes))
	for i, h := range hexes {
		colors[i] = mustHex(t, h)
	}
	return colors
}

func TestRatioKnownValues(t *testing.T) {
	tests := []struct {
		fg, bg string
		want   float64
	}{
		{"#000000", "#ffffff", 21.0},
		{"#ffffff", "#111827", 17.74},
		{"#ff6f61", "#111827", 6.50},
		{"#ff6f61", "#ffffff", 2.73},
		{"#777777", "#ffffff", 4.48},
		{"#767676", "#ffffff", 4.54},
	}

	for _, tt := range tests {
		got := RoundRatio(Ratio(mustHex(t, tt.fg), mustHex(t, tt.bg)))
		if got != tt.want {
			t.Errorf("Ratio(%s, %s) = %.2f, want %.2f", tt.fg, tt.bg, got, tt.want)
		}
	}
}

func TestRatioSymmetryAndBounds(t *testing.T) {
	colors := palette(t, "#000000", "#ffffff", "#ff6f61", "#111827", "#8ed6a9", "#6fa8ff", "#b76fff", "#fdd66f")

	for _, a := range colors {
		if r := Ratio(a, a); r != MinRatio {
			t.Errorf("Ratio(%s, %s) = %v, want 1", a.Hex(), a.Hex(), r)
		}
		for _, b := range colors {
			ab, ba := Ratio(a, b), Ratio(b, a)
			if ab != ba {
				t.Errorf("Ratio not symmetric for %s/%s: %v vs %v", a.Hex(), b.Hex(), ab, ba)
			}
			if ab < MinRatio || ab > MaxRatio+1e-9 {
				t.Errorf("Ratio(%s, %s) = %v out of [1, 21]", a.Hex(), b.Hex(), ab)
			}
		}
	}
}

func TestRelativeLuminanceExtremes(t *testing.T) {
	if l := RelativeLuminance(models.Color{}); l != 0 {
		t.Errorf("black luminance = %v, want 0", l)
	}
	if l := RelativeLuminance(models.Color{R: 255, G: 255, B: 255}); math.Abs(l-1) > 1e-9 {
		t.Errorf("white luminance = %v, want 1", l)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(17.7397); got != "17.74:1" {
		t.Errorf("FormatRatio = %q, want 17.74:1", got)
	}
}
