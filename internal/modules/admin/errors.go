package admin

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrNotFound      = errors.New("not found")
)
