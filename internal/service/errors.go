package service

import "errors"

// Failure kinds the controllers map onto HTTP statuses. Everything else a
// service returns is treated as an internal storage failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrNoCandidateWords = errors.New("no candidate words in range")
	ErrValidation       = errors.New("validation failed")
)
