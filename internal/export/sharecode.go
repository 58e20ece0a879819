package export

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

// ShareCode builds a studio code from the colors used by pairs.
// Colors are deduplicated and numbered by their palette position;
// names default to "Color N".
func ShareCode(pairs []models.ColorPair, palette []models.Color, names map[string]string) (string, error) {
	payload := SharePayload(pairs, palette, names)

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode studio code: %w", err)
	}
	return parser.StudioCodePrefix + url.QueryEscape(string(raw)), nil
}

// SharePayload collects the colors of pairs in palette order
func SharePayload(pairs []models.ColorPair, palette []models.Color, names map[string]string) parser.StudioPayload {
	used := make(map[string]bool)
	for _, pair := range pairs {
		used[pair.Foreground.Hex()] = true
		used[pair.Background.Hex()] = true
	}

	payload := parser.StudioPayload{
		ColorNames: []string{},
		Colors:     []string{},
	}
	seen := make(map[string]bool)
	for i, c := range palette {
		hex := c.Hex()
		if !used[hex] || seen[hex] {
			continue
		}
		seen[hex] = true

		name := names[hex]
		if name == "" {
			name = fmt.Sprintf("Color %d", i+1)
		}
		payload.Colors = append(payload.Colors, hex)
		payload.ColorNames = append(payload.ColorNames, name)
	}
	return payload
}
