package duallist

import "errors"

// ErrInvalidArgument is the error returned when a count parameter is zero or
// negative where a positive value is required.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange is the error returned when a position does not address an
// element (or a gap, for insertion) of the insertion chain.
var ErrOutOfRange = errors.New("position out of range")

// ErrEmpty is the error returned when an operation that needs at least one
// element is invoked on an empty list.
var ErrEmpty = errors.New("list is empty")

// ErrCorrupt is the error returned by Check when the two chains disagree.
var ErrCorrupt = errors.New("chain invariant violated")
