package generation

import "errors"

var (
	// ErrInvalidConfiguration is returned when generator settings cannot produce a map
	ErrInvalidConfiguration = errors.New("invalid map configuration")
	// ErrOutOfBounds is returned when a grid coordinate lies outside the map
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
