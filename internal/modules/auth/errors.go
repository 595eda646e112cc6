package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrAlreadyRegistered  = errors.New("email or phone already registered")
	ErrInvalidOtp         = errors.New("invalid or expired otp")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account not verified")
)
