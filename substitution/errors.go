package substitution

import "errors"

var (
	// ErrNilScorer is returned when Solve is called without a scorer.
	ErrNilScorer = errors.New("substitution: scorer is nil")

	// ErrBadOptions indicates an invalid Options value (e.g. negative epochs).
	ErrBadOptions = errors.New("substitution: invalid options")

	// ErrBadKey indicates a key string that is not a permutation of A–Z.
	ErrBadKey = errors.New("substitution: key is not a permutation of A-Z")
)
