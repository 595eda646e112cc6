package subscription

import "errors"

var (
	ErrValidation    = errors.New("invalid subscription request")
	ErrOwnerNotFound = errors.New("venue owner not found")
	ErrNotFound      = errors.New("subscription not found")
)
