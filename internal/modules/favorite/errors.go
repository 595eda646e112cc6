package favorite

import "errors"

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrNotFavorited  = errors.New("venue is not in favorites")
	ErrForbidden     = errors.New("forbidden")
)
