package palette

import (
	"errors"
	"fmt"

	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

var (
	ErrDuplicateColor  = errors.New("color is already in the palette")
	ErrIndexOutOfRange = errors.New("palette index out of range")
)

// Palette is an ordered list of unique colors. Operations never modify the
// receiver; they return a new Palette.
type Palette []models.Color

// Hexes returns the canonical hex of every entry, in order
func (p Palette) Hexes() []string {
	hexes := make([]string, len(p))
	for i, c := range p {
		hexes[i] = c.Hex()
	}
	return hexes
}

// IndexOf returns the position of c or -1
func (p Palette) IndexOf(c models.Color) int {
	hex := c.Hex()
	for i, existing := range p {
		if existing.Hex() == hex {
			return i
		}
	}
	return -1
}

// Contains reports whether a color with the same canonical hex is present
func (p Palette) Contains(c models.Color) bool {
	return p.IndexOf(c) >= 0
}

func (p Palette) clone(extra int) Palette {
	out := make(Palette, len(p), len(p)+extra)
	copy(out, p)
	return out
}

// AddColors parses raw (a bulk blob or studio code) and appends every new
// color in encounter order. Duplicates are skipped silently; tokens that
// do not parse are returned for reporting.
func AddColors(p Palette, raw string) (Palette, []*parser.ParseFailure) {
	parsed := parser.ParseBulk(raw)
	return appendUnique(p, parsed.Colors), parsed.Failures
}

func appendUnique(p Palette, colors []models.Color) Palette {
	out := p.clone(len(colors))
	for _, c := range colors {
		if !out.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// AddColor adds a single color, e.g. from a color picker. Unlike AddColors
// a duplicate is reported with ErrDuplicateColor.
func AddColor(p Palette, text string) (Palette, error) {
	c, err := parser.ParseColor(text)
	if err != nil {
		return p, err
	}
	if p.Contains(c) {
		return p, fmt.Errorf("%s: %w", c.Hex(), ErrDuplicateColor)
	}
	out := p.clone(1)
	return append(out, c), nil
}

// RemoveColor drops the entry at index; later entries shift left
func RemoveColor(p Palette, index int) (Palette, error) {
	if index < 0 || index >= len(p) {
		return p, fmt.Errorf("remove %d from %d colors: %w", index, len(p), ErrIndexOutOfRange)
	}
	out := make(Palette, 0, len(p)-1)
	out = append(out, p[:index]...)
	return append(out, p[index+1:]...), nil
}

// ReorderColor moves the entry at from to position to, shifting the others
func ReorderColor(p Palette, from, to int) (Palette, error) {
	if from < 0 || from >= len(p) || to < 0 || to >= len(p) {
		return p, fmt.Errorf("move %d to %d in %d colors: %w", from, to, len(p), ErrIndexOutOfRange)
	}
	out := p.clone(0)
	if from == to {
		return out, nil
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}
