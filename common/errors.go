package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorShapeMismatch is returned when a matrix or vector does not have
	// the dimensions an operation requires.
	ErrorShapeMismatch = errors.New("shape mismatch")

	ErrorInvalidParameter = errors.New("invalid parameter")
)
