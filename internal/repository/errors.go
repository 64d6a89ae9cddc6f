package repository

import "errors"

// Infrastructure facts returned (optionally wrapped) by every store
// implementation. Services translate them into domain errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
