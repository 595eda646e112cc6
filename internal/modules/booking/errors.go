package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrPriceMismatch = errors.New("total price does not match nights times rate")
	ErrVenueNotFound = errors.New("venue not found or not bookable")
	ErrDateConflict  = errors.New("dates conflict with an existing booking")
	ErrNotFound      = errors.New("booking not found")
	ErrForbidden     = errors.New("forbidden")
)
