package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid review request")
	ErrNotAllowed     = errors.New("review not allowed for this booking")
	ErrNotFound       = errors.New("not found")
)
