package models

import "errors"

// Sentinel errors for the request-scoped failure classes. Handlers map these
// to HTTP statuses with errors.Is; anything else is a server-side fault.
var (
	ErrNotFound      = errors.New("not found")
	ErrOutOfBounds   = errors.New("coordinates are outside the campus bounds")
	ErrDuplicatePath = errors.New("path between these nodes already exists")
	ErrNoPath        = errors.New("no path exists")
	ErrInvalidInput  = errors.New("invalid input")
)
