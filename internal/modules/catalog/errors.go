package catalog

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("venue not found")
	ErrNotAnOwner  = errors.New("user has no venue owner profile")
	ErrInvalidType = errors.New("invalid venue type")
)
