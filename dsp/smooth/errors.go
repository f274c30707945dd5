package smooth

import "errors"

var (
	// ErrAxisMismatch is returned when the period axis and the spectrum have
	// different lengths.
	ErrAxisMismatch = errors.New("period axis and spectrum length mismatch")

	// ErrInvalidTargets is returned when target periods are not strictly
	// ascending.
	ErrInvalidTargets = errors.New("target periods must be strictly ascending")
)
