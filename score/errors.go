package score

import "errors"

var (
	// ErrBadTable indicates a reference frequency table with a non-positive
	// or non-finite entry; chi-squared divides by every expected value.
	ErrBadTable = errors.New("score: frequency table entries must be finite and > 0")
)
