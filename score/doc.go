// Package score defines the single scoring capability used by every solver
// and the letter-frequency (chi-squared) scorer.
//
// Convention:
//
//	Every Scorer returns a real number where HIGHER means "more plausible
//	English". Statistics with the opposite orientation (chi-squared distance:
//	lower is better) are adapted by negation at this boundary, so solvers can
//	compare candidates from any scorer with a single ">".
//
// Scorers:
//   - ngram.Model: n-gram log-likelihood (satisfies Scorer directly).
//   - LetterFrequency: −χ² against a reference letter table.
//   - Func and Negate: adapters for ad-hoc functions.
//
// All scorers in lvlcrypt are immutable after construction and safe for
// concurrent use.
package score
