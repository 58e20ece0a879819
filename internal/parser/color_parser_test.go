package parser

import (
	"errors"
	"testing"

	"github.com/balkashynov/wcagpairs/internal/models"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hex with hash", "#FF6F61", "#ff6f61"},
		{"hex without hash", "ff6f61", "#ff6f61"},
		{"hex surrounding space", "  #111827 ", "#111827"},
		{"rgb", "rgb(17, 24, 39)", "#111827"},
		{"rgb no spaces", "RGB(255,255,255)", "#ffffff"},
		{"hsl red", "hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl green", "hsl(120, 100%, 50%)", "#00ff00"},
		{"hsl grey without percent", "hsl(0, 0, 50)", "#808080"},
		{"hsl hue wraps", "hsl(360, 100%, 50%)", "#ff0000"},
		{"hsl lightness clamps", "hsl(0, 0%, 150%)", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) returned error: %v", tt.input, err)
			}
			if got.Hex() != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.input, got.Hex(), tt.want)
			}
		})
	}
}

func TestParseColorFailures(t *testing.T) {
	inputs := []string{
		"#zzz",
		"#fff",
		"#1234567",
		"rgb(256, 0, 0)",
		"rgb(1, 2)",
		"hsl(10, 20%)",
		"red",
		"",
	}

	for _, input := range inputs {
		_, err := ParseColor(input)
		if err == nil {
			t.Errorf("ParseColor(%q) expected an error", input)
			continue
		}
		var failure *ParseFailure
		if !errors.As(err, &failure) {
			t.Errorf("ParseColor(%q) error %v is not a *ParseFailure", input, err)
		}
	}
}

func TestParseColorRoundTrip(t *testing.T) {
	samples := []models.Color{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 111, B: 97},
		{R: 17, G: 24, B: 39},
		{R: 1, G: 128, B: 254},
	}
	for v := 0; v < 256; v += 15 {
		samples = append(samples, models.Color{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)})
	}

	for _, c := range samples {
		got, err := ParseColor(c.Hex())
		if err != nil {
			t.Fatalf("ParseColor(%s) returned error: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("ParseColor(%s) = %+v, want %+v", c.Hex(), got, c)
		}
	}
}
