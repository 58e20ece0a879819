package export

import "errors"

// ErrNoFavorites is returned when an export needs at least one favorite pair
var ErrNoFavorites = errors.New("no favorite pairs selected. Star at least one pair to export")
