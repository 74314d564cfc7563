package ngram

import "errors"

// Every message is prefixed with "ngram: ". Load and New wrap these with
// line or entry context via fmt.Errorf("%w: ..."); match with errors.Is.
var (
	// ErrIO indicates the corpus source could not be opened or read.
	ErrIO = errors.New("ngram: corpus read failed")

	// ErrParse indicates a malformed corpus line: wrong field count,
	// a non-letter gram, or a count that is not a positive integer.
	ErrParse = errors.New("ngram: malformed corpus line")

	// ErrDegenerateModel indicates a table from which no meaningful model
	// can be built: it is empty, or its grams do not share one length.
	ErrDegenerateModel = errors.New("ngram: degenerate model")

	// ErrBadWidth indicates a requested n-gram width below 1.
	ErrBadWidth = errors.New("ngram: width must be >= 1")
)
