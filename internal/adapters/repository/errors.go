package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound     = errors.New("player not found")
	ErrInvalidLimit = errors.New("invalid standings limit")
	ErrNoSnapshot   = errors.New("no ratings published yet")
	ErrNilSnapshot  = errors.New("nil snapshot")
)
