package imaging

import "errors"

var (
	// ErrInvalidArgument reports a bad angle, direction, size or input list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports a pixel coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrIO reports a decode or encode failure at the file boundary.
	ErrIO = errors.New("image i/o failed")
)
