package vigenere

import "errors"

var (
	// ErrNilScorer is returned when Solve is called without a scorer.
	ErrNilScorer = errors.New("vigenere: scorer is nil")

	// ErrBadKey indicates an empty key or one containing non-letters.
	ErrBadKey = errors.New("vigenere: key must be one or more letters")

	// ErrBadMaxPeriod indicates a period scan bound below 2; the scan range
	// [1, maxPeriod) would be empty.
	ErrBadMaxPeriod = errors.New("vigenere: max period must be >= 2")

	// ErrBadOptions indicates an invalid Options value.
	ErrBadOptions = errors.New("vigenere: invalid options")
)
