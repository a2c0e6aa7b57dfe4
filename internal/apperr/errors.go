// Package apperr defines sentinel errors shared across service layers.
package apperr

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotLoaded indicates no dataset snapshot has been loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")
)
