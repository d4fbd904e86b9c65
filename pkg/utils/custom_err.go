package utils

import "errors"

var (
	ErrDatabaseError     = errors.New("database error")
	ErrQuizLoadFailed    = errors.New("quiz could not be loaded")
	ErrSessionNotFound   = errors.New("quiz session not found or expired")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrConfigNotFound    = errors.New("quiz config not found")
)
