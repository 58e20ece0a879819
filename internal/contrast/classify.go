package contrast

import (
	"fmt"

	"github.com/balkashynov/wcagpairs/internal/models"
)

// Classify returns a copy of pairs with Pass set to ratio >= threshold
func Classify(pairs []models.ColorPair, threshold float64) []models.ColorPair {
	labelled := make([]models.ColorPair, len(pairs))
	for i, pair := range pairs {
		pair.Pass = pair.Ratio >= threshold
		labelled[i] = pair
	}
	return labelled
}

// FilterByProfile keeps the pairs that meet the profile's minimum.
// ProfileAll keeps everything.
func FilterByProfile(pairs []models.ColorPair, profile models.Profile) []models.ColorPair {
	if !profile.Gradable() {
		out := make([]models.ColorPair, len(pairs))
		copy(out, pairs)
		return out
	}

	minimum := profile.Min()
	out := make([]models.ColorPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Ratio >= minimum {
			out = append(out, pair)
		}
	}
	return out
}

// Summary holds the palette-level counts and guidance signals
type Summary struct {
	Colors           int `json:"colors"`
	Pairs            int `json:"pairs"`
	PassingPairs     int `json:"passing_pairs"`
	AccessiblePairs  int `json:"accessible_pairs"`
	AccessibleColors int `json:"accessible_colors"`

	// NoAccessiblePairs: at least one pair exists and none reaches 4.5:1
	NoAccessiblePairs bool `json:"no_accessible_pairs"`
	// FewColorsAccessible: fewer than half of the colors take part in a
	// pair reaching 4.5:1 (and at least one does)
	FewColorsAccessible bool `json:"few_colors_accessible"`
}

// Summarize computes the guidance signals for a palette and its pairs.
// Passing counts use each pair's Pass label; the signals always use the
// AA normal text minimum.
func Summarize(palette []models.Color, pairs []models.ColorPair) Summary {
	s := Summary{
		Colors: len(palette),
		Pairs:  len(pairs),
	}

	participating := make(map[string]struct{})
	for _, pair := range pairs {
		if pair.Pass {
			s.PassingPairs++
		}
		if pair.Ratio >= models.AccessibleMinimum {
			s.AccessiblePairs++
			participating[pair.Foreground.Hex()] = struct{}{}
			participating[pair.Background.Hex()] = struct{}{}
		}
	}
	s.AccessibleColors = len(participating)

	s.NoAccessiblePairs = s.Pairs > 0 && s.AccessiblePairs == 0
	s.FewColorsAccessible = s.Colors > 0 &&
		s.AccessibleColors > 0 &&
		2*s.AccessibleColors < s.Colors

	return s
}

// Guidance returns the advice shown under the results, or "" when the
// palette needs none.
func Guidance(s Summary) string {
	switch {
	case s.Colors < 2:
		return "Add at least 2 colors to compare."
	case s.NoAccessiblePairs:
		return "No pair reaches 4.5:1. Add a much darker or much lighter color so text stays readable."
	case s.FewColorsAccessible:
		return fmt.Sprintf("Only %d of %d colors appear in a pair reaching 4.5:1. Consider adding a neutral dark or light shade.",
			s.AccessibleColors, s.Colors)
	default:
		return ""
	}
}
