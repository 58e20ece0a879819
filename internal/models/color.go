package models

import "fmt"

// Color is an sRGB color with 8-bit channels. It is a value type: two
// colors are the same color when their canonical hex strings match.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the canonical "#rrggbb" form used for display and dedup keys
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// ColorPair is one directed foreground/background combination
type ColorPair struct {
	ID         string  `json:"id"`
	Foreground Color   `json:"foreground"`
	Background Color   `json:"background"`
	Ratio      float64 `json:"ratio"`
	Pass       bool    `json:"pass"`
}

// PairID derives the stable identifier of an ordered pair from the
// canonical hex of both colors, e.g. "#ffffff-#111827".
func PairID(fg, bg Color) string {
	return fg.Hex() + "-" + bg.Hex()
}
