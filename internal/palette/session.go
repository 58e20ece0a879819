package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/balkashynov/wcagpairs/internal/contrast"
	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

// DefaultSoftCap is the palette size above which the studio warns that
// results become hard to scan. It is advisory only.
const DefaultSoftCap = 12

var ErrProfileNotGradable = errors.New("the \"all\" level cannot be used for pass/fail")

// Result is everything derived from the palette and the active level.
// It is rebuilt from scratch after every change.
type Result struct {
	Pairs        []models.ColorPair // generator order
	Summary      contrast.Summary
	Insufficient bool // fewer than 2 colors
	OverSoftCap  bool
}

// Options configures a new Session
type Options struct {
	Level   models.Profile
	Filter  models.Profile
	Sort    models.SortOrder
	SoftCap int
}

// DefaultOptions grades against AA normal text, shows every pair and lists
// the highest contrast first.
func DefaultOptions() Options {
	return Options{
		Level:   models.ProfileAASmall,
		Filter:  models.ProfileAll,
		Sort:    models.SortRatio,
		SoftCap: DefaultSoftCap,
	}
}

// Session owns the palette, the selected levels and the favorite pairs.
// It is not safe for concurrent use; a single UI loop owns it.
type Session struct {
	palette   Palette
	names     map[string]string // canonical hex -> display name
	level     models.Profile
	filter    models.Profile
	order     models.SortOrder
	softCap   int
	favorites map[string]struct{}

	result    Result
	listeners []func(Result)
}

// NewSession creates an empty session
func NewSession(opts Options) (*Session, error) {
	if !opts.Level.Gradable() {
		return nil, ErrProfileNotGradable
	}
	if opts.SoftCap <= 0 {
		opts.SoftCap = DefaultSoftCap
	}

	s := &Session{
		palette:   Palette{},
		names:     map[string]string{},
		level:     opts.Level,
		filter:    opts.Filter,
		order:     opts.Sort,
		softCap:   opts.SoftCap,
		favorites: map[string]struct{}{},
	}
	s.recompute()
	return s, nil
}

// Subscribe registers fn to be called with the new Result after every recomputation
func (s *Session) Subscribe(fn func(Result)) {
	s.listeners = append(s.listeners, fn)
}

// recompute regenerates pairs, labels and signals from scratch
func (s *Session) recompute() {
	pairs := contrast.GeneratePairs(s.palette, s.level.Min())
	s.result = Result{
		Pairs:        pairs,
		Summary:      contrast.Summarize(s.palette, pairs),
		Insufficient: len(s.palette) < 2,
		OverSoftCap:  len(s.palette) > s.softCap,
	}
	for _, fn := range s.listeners {
		fn(s.result)
	}
}

// Palette operations

// AddColors appends every new color found in raw and returns the tokens
// that could not be parsed. Names carried by a studio code are kept.
func (s *Session) AddColors(raw string) []*parser.ParseFailure {
	parsed := parser.ParseBulk(raw)
	s.palette = appendUnique(s.palette, parsed.Colors)
	for hex, name := range parsed.Names {
		if _, named := s.names[hex]; !named {
			s.names[hex] = name
		}
	}
	s.recompute()
	return parsed.Failures
}

// AddColor adds one color and reports ErrDuplicateColor or a ParseFailure
func (s *Session) AddColor(text string) error {
	next, err := AddColor(s.palette, text)
	if err != nil {
		return err
	}
	s.palette = next
	s.recompute()
	return nil
}

// RemoveColor drops the color at index
func (s *Session) RemoveColor(index int) error {
	next, err := RemoveColor(s.palette, index)
	if err != nil {
		return err
	}
	delete(s.names, s.palette[index].Hex())
	s.palette = next
	s.recompute()
	return nil
}

// ReorderColor moves a color; pair IDs are unaffected, only their order
func (s *Session) ReorderColor(from, to int) error {
	next, err := ReorderColor(s.palette, from, to)
	if err != nil {
		return err
	}
	s.palette = next
	s.recompute()
	return nil
}

// Clear empties the palette. Favorites are kept and become inert.
func (s *Session) Clear() {
	s.palette = Palette{}
	s.names = map[string]string{}
	s.recompute()
}

// Rename sets the display name of the color at index. Names never
// influence contrast results.
func (s *Session) Rename(index int, name string) error {
	if index < 0 || index >= len(s.palette) {
		return fmt.Errorf("rename %d of %d colors: %w", index, len(s.palette), ErrIndexOutOfRange)
	}
	hex := s.palette[index].Hex()
	if name == "" {
		delete(s.names, hex)
		return nil
	}
	s.names[hex] = name
	return nil
}

// Levels

// SetLevel changes the pass/fail level. ProfileAll is rejected.
func (s *Session) SetLevel(p models.Profile) error {
	if !p.Gradable() {
		return ErrProfileNotGradable
	}
	s.level = p
	s.recompute()
	return nil
}

// SetFilter changes which pairs are visible
func (s *Session) SetFilter(p models.Profile) {
	s.filter = p
}

// SetSort changes the presentation order of visible pairs
func (s *Session) SetSort(order models.SortOrder) {
	s.order = order
}

// Favorites

// ToggleFavorite adds id when absent and removes it when present.
// The id is not checked against the current pairs.
func (s *Session) ToggleFavorite(id string) {
	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
		return
	}
	s.favorites[id] = struct{}{}
}

// SelectAll marks every given pair as favorite
func (s *Session) SelectAll(pairs []models.ColorPair) {
	for _, pair := range pairs {
		s.favorites[pair.ID] = struct{}{}
	}
}

// ClearFavorites forgets every favorite
func (s *Session) ClearFavorites() {
	s.favorites = map[string]struct{}{}
}

// IsFavorite reports whether id is marked
func (s *Session) IsFavorite(id string) bool {
	_, ok := s.favorites[id]
	return ok
}

// Favorites returns the marked ids, sorted, including stale ones
func (s *Session) Favorites() []string {
	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FavoritePairs returns the visible-order pairs of the current palette
// that are marked. Stale ids are ignored.
func (s *Session) FavoritePairs() []models.ColorPair {
	ordered := contrast.SortPairs(s.result.Pairs, s.order)
	out := make([]models.ColorPair, 0, len(s.favorites))
	for _, pair := range ordered {
		if s.IsFavorite(pair.ID) {
			out = append(out, pair)
		}
	}
	return out
}

// Accessors

// Palette returns a copy of the current palette
func (s *Session) Palette() Palette {
	return s.palette.clone(0)
}

// Names returns a copy of the display names keyed by canonical hex
func (s *Session) Names() map[string]string {
	out := make(map[string]string, len(s.names))
	for k, v := range s.names {
		out[k] = v
	}
	return out
}

// Level returns the active pass/fail level
func (s *Session) Level() models.Profile { return s.level }

// Filter returns the display filter
func (s *Session) Filter() models.Profile { return s.filter }

// Sort returns the presentation order
func (s *Session) Sort() models.SortOrder { return s.order }

// Result returns the latest derived result
func (s *Session) Result() Result { return s.result }

// VisiblePairs applies the display filter and sort order to the current pairs
func (s *Session) VisiblePairs() []models.ColorPair {
	return contrast.SortPairs(contrast.FilterByProfile(s.result.Pairs, s.filter), s.order)
}
