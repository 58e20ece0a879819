package contrast

import (
	"sort"

	"github.com/balkashynov/wcagpairs/internal/models"
)

// GeneratePairs expands a palette into every ordered (foreground, background)
// pair of distinct entries. Pairs are ordered by background position first and
// foreground position second; the result for a palette of N colors always has
// N*(N-1) entries. Pass is labelled against threshold.
func GeneratePairs(palette []models.Color, threshold float64) []models.ColorPair {
	if len(palette) < 2 {
		return []models.ColorPair{}
	}

	pairs := make([]models.ColorPair, 0, len(palette)*(len(palette)-1))
	for j, bg := range palette {
		for i, fg := range palette {
			if i == j {
				continue
			}
			ratio := Ratio(fg, bg)
			pairs = append(pairs, models.ColorPair{
				ID:         models.PairID(fg, bg),
				Foreground: fg,
				Background: bg,
				Ratio:      ratio,
				Pass:       ratio >= threshold,
			})
		}
	}
	return pairs
}

// SortPairs returns a copy of pairs in the requested order.
// SortPalette keeps the input order, SortRatio is a stable descending sort.
func SortPairs(pairs []models.ColorPair, order models.SortOrder) []models.ColorPair {
	sorted := make([]models.ColorPair, len(pairs))
	copy(sorted, pairs)

	if order == models.SortRatio {
		sort.SliceStable(sorted, func(a, b int) bool {
			return sorted[a].Ratio > sorted[b].Ratio
		})
	}
	return sorted
}
