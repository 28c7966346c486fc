package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrResourceContract = errors.New("resource contract violation")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
