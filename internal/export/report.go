// Package export turns session results into the formats handed to other
// tools: studio codes and JSON reports. Image and PDF rendering plug in
// through the Exporter interface.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/balkashynov/wcagpairs/internal/contrast"
	"github.com/balkashynov/wcagpairs/internal/palette"
)

// ReportPair is one pair as exposed to export surfaces
type ReportPair struct {
	ID         string  `json:"id"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Pass       bool    `json:"pass"`
	Favorite   bool    `json:"favorite"`
}

// Report is a read-only snapshot of a session
type Report struct {
	Palette   []string          `json:"palette"`
	Names     map[string]string `json:"names,omitempty"`
	Level     string            `json:"level"`
	Threshold float64           `json:"threshold"`
	Filter    string            `json:"filter"`
	Sort      string            `json:"sort"`
	Pairs     []ReportPair      `json:"pairs"`
	Favorites []ReportPair      `json:"favorites"`
	Summary   contrast.Summary  `json:"summary"`
	Guidance  string            `json:"guidance,omitempty"`
	ShareCode string            `json:"share_code,omitempty"`
}

// NewReport snapshots the visible pairs and favorites of s
func NewReport(s *palette.Session) (Report, error) {
	result := s.Result()
	names := s.Names()

	r := Report{
		Palette:   s.Palette().Hexes(),
		Names:     names,
		Level:     s.Level().String(),
		Threshold: s.Level().Min(),
		Filter:    s.Filter().String(),
		Sort:      s.Sort().String(),
		Pairs:     []ReportPair{},
		Favorites: []ReportPair{},
		Summary:   result.Summary,
		Guidance:  contrast.Guidance(result.Summary),
	}

	for _, pair := range s.VisiblePairs() {
		r.Pairs = append(r.Pairs, ReportPair{
			ID:         pair.ID,
			Foreground: pair.Foreground.Hex(),
			Background: pair.Background.Hex(),
			Ratio:      contrast.RoundRatio(pair.Ratio),
			Pass:       pair.Pass,
			Favorite:   s.IsFavorite(pair.ID),
		})
	}

	favorites := s.FavoritePairs()
	for _, pair := range favorites {
		r.Favorites = append(r.Favorites, ReportPair{
			ID:         pair.ID,
			Foreground: pair.Foreground.Hex(),
			Background: pair.Background.Hex(),
			Ratio:      contrast.RoundRatio(pair.Ratio),
			Pass:       pair.Pass,
			Favorite:   true,
		})
	}

	if len(favorites) > 0 {
		code, err := ShareCode(favorites, s.Palette(), names)
		if err != nil {
			return Report{}, err
		}
		r.ShareCode = code
	}

	return r, nil
}

// Exporter writes a report in one output format
type Exporter interface {
	Export(w io.Writer, r Report) error
}

// JSONExporter writes the whole report as indented JSON
type JSONExporter struct{}

func (JSONExporter) Export(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// ShareCodeExporter writes only the studio code of the favorites
type ShareCodeExporter struct{}

func (ShareCodeExporter) Export(w io.Writer, r Report) error {
	if r.ShareCode == "" {
		return ErrNoFavorites
	}
	_, err := fmt.Fprintln(w, r.ShareCode)
	return err
}
