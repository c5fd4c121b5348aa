package types

import "errors"

var (
	// ErrNotFound is returned when an operation references a car id outside the fleet.
	ErrNotFound = errors.New("elevator not found")
	// ErrInvalidArgument is returned by the transport for out-of-range floors and malformed directions.
	ErrInvalidArgument = errors.New("invalid argument")
)
