// Package caesar breaks Caesar shift ciphers by exhaustive search.
//
// Algorithm:
//  1. For every rotation s in [0, 26): candidate = alphabet.Rotate(text, s).
//  2. Score the candidate with the supplied score.Scorer (higher is better).
//  3. Keep the first strictly-best rotation in ascending scan order.
//
// The winning rotation s decrypts the text; the recovered encryption key is
// the inverse rotation (26−s) mod 26, reported as Result.Shift.
//
// Any Scorer works: an n-gram model (ngram.Model) or the chi-squared
// letter-frequency scorer (score.English()).
//
// Complexity: 26 scorer calls, O(26·len(text)).
package caesar
