package vigenere

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// Key is an immutable sequence of uppercase letters. The zero Key is empty
// and leaves text unchanged.
type Key struct {
	letters string
}

// ParseKey uppercases s and returns it as a Key.
// Returns ErrBadKey for an empty string or any non-letter.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, ErrBadKey
	}
	var i int
	for i = 0; i < len(s); i++ {
		if !alphabet.IsLetter(s[i]) {
			return Key{}, fmt.Errorf("%w: %q at %d", ErrBadKey, s[i], i)
		}
	}
	return Key{letters: strings.ToUpper(s)}, nil
}

// MustParseKey is ParseKey for constant keys; it panics on error.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Neutral returns the all-'A' key of length n, which decrypts to the input.
func Neutral(n int) Key {
	if n <= 0 {
		return Key{}
	}
	return Key{letters: strings.Repeat("A", n)}
}

// Len returns the number of letters in k.
func (k Key) Len() int { return len(k.letters) }

// At returns the letter at position i.
func (k Key) At(i int) byte { return k.letters[i] }

// With returns a copy of k whose position i holds letter (uppercase A–Z).
func (k Key) With(i int, letter byte) Key {
	b := []byte(k.letters)
	b[i] = letter
	return Key{letters: string(b)}
}

// String returns the key letters.
func (k Key) String() string { return k.letters }
