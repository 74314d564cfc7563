package alphabet

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// dropNonLetters and upperASCII are stateless transformers and therefore safe
// to share; a transform.Chain of them would not be (chains keep buffers).
var (
	dropNonLetters = runes.Remove(runes.Predicate(func(r rune) bool {
		return !isLetterRune(r)
	}))

	upperASCII = runes.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	})
)

// Canonicalize strips every non-letter from s and folds the remaining letters
// to uppercase. Invalid UTF-8 is dropped as well.
//
// Complexity: O(len(s)).
func Canonicalize(s string) string {
	if isCanonical(s) {
		return s
	}
	out, _, _ := transform.String(dropNonLetters, s)
	out, _, _ = transform.String(upperASCII, out)
	return out
}

// isCanonical reports whether s already consists of uppercase letters only.
func isCanonical(s string) bool {
	var i int
	for i = 0; i < len(s); i++ {
		if !IsUpper(s[i]) {
			return false
		}
	}
	return true
}
