package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProfile   = errors.New("unknown accessibility level")
	ErrUnknownSortOrder = errors.New("unknown sort order")
)

// Profile is a named WCAG accessibility level
type Profile int

const (
	ProfileAll Profile = iota
	ProfileAALarge
	ProfileAASmall
	ProfileAAASmall
	ProfileAAALarge
)

// Profiles lists every profile in the order they are offered to the user
var Profiles = []Profile{
	ProfileAll,
	ProfileAALarge,
	ProfileAASmall,
	ProfileAAASmall,
	ProfileAAALarge,
}

// AccessibleMinimum is the AA normal-text ratio used by the palette-level
// guidance signals, independent of the active level.
const AccessibleMinimum = 4.5

// Min returns the minimum contrast ratio required by the profile.
// ProfileAll has no minimum.
func (p Profile) Min() float64 {
	switch p {
	case ProfileAALarge:
		return 3.0
	case ProfileAASmall:
		return 4.5
	case ProfileAAASmall:
		return 7.0
	case ProfileAAALarge:
		return 4.5
	default:
		return 0
	}
}

// Gradable reports whether the profile can be used for pass/fail labelling
func (p Profile) Gradable() bool {
	return p != ProfileAll
}

func (p Profile) String() string {
	switch p {
	case ProfileAALarge:
		return "aa-large"
	case ProfileAASmall:
		return "aa-small"
	case ProfileAAASmall:
		return "aaa-small"
	case ProfileAAALarge:
		return "aaa-large"
	default:
		return "all"
	}
}

// Label is the human readable name shown in tables and the studio
func (p Profile) Label() string {
	switch p {
	case ProfileAALarge:
		return "AA Large Text"
	case ProfileAASmall:
		return "AA Normal Text"
	case ProfileAAASmall:
		return "AAA Normal Text"
	case ProfileAAALarge:
		return "AAA Large Text"
	default:
		return "All pairs"
	}
}

// Next cycles through Profiles. When gradableOnly is set ProfileAll is skipped.
func (p Profile) Next(gradableOnly bool) Profile {
	for i, candidate := range Profiles {
		if candidate != p {
			continue
		}
		next := Profiles[(i+1)%len(Profiles)]
		if gradableOnly && !next.Gradable() {
			next = Profiles[(i+2)%len(Profiles)]
		}
		return next
	}
	return ProfileAASmall
}

// ParseProfile converts a level name to a Profile.
// Accepts: all, aa-large, aa-small, aaa-small, aaa-large and the aliases
// aa, aa-normal, aaa, aaa-normal (case insensitive).
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all", "":
		return ProfileAll, nil
	case "aa-large":
		return ProfileAALarge, nil
	case "aa-small", "aa", "aa-normal":
		return ProfileAASmall, nil
	case "aaa-small", "aaa", "aaa-normal":
		return ProfileAAASmall, nil
	case "aaa-large":
		return ProfileAAALarge, nil
	default:
		return ProfileAll, fmt.Errorf("%w %q. Use: all, aa-large, aa-small, aaa-small, aaa-large", ErrUnknownProfile, name)
	}
}

// SortOrder selects how pairs are presented
type SortOrder int

const (
	// SortRatio lists the most contrasting pairs first
	SortRatio SortOrder = iota
	// SortPalette keeps generator order: background position, then foreground position
	SortPalette
)

func (o SortOrder) String() string {
	if o == SortPalette {
		return "palette"
	}
	return "ratio"
}

// Toggle switches between the two orders
func (o SortOrder) Toggle() SortOrder {
	if o == SortPalette {
		return SortRatio
	}
	return SortPalette
}

// ParseSortOrder converts "ratio" or "palette" to a SortOrder
func ParseSortOrder(name string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ratio", "contrast", "":
		return SortRatio, nil
	case "palette", "order":
		return SortPalette, nil
	default:
		return SortRatio, fmt.Errorf("%w %q. Use: ratio, palette", ErrUnknownSortOrder, name)
	}
}
