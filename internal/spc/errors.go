package spc

import "errors"

var (
	// ErrInvalidSampleSize is returned when the requested subgroup size has
	// no entry in the Shewhart constants table (only 1-5 are supported).
	ErrInvalidSampleSize = errors.New("invalid sample size: must be between 1 and 5")

	// ErrInsufficientData is returned when fewer valid measurements remain
	// after extraction than the requested sample size. A fully malformed
	// input set surfaces as this error since unparseable records are
	// dropped, not reported individually.
	ErrInsufficientData = errors.New("insufficient valid measurements for the requested sample size")
)
