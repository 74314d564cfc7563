package substitution

import (
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// Key is a decode-direction permutation of the alphabet: Key[i] is the
// uppercase plaintext letter for ciphertext letter 'A'+i.
type Key [alphabet.Size]byte

// Identity returns the key that maps every letter to itself.
func Identity() Key {
	var (
		k Key
		i int
	)
	for i = 0; i < alphabet.Size; i++ {
		k[i] = byte('A' + i)
	}
	return k
}

// ParseKey reads a 26-letter alphabet string (case-insensitive) such that
// the i-th letter is the plaintext for ciphertext letter 'A'+i.
// Returns ErrBadKey unless s is a permutation of A–Z.
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != alphabet.Size {
		return k, fmt.Errorf("%w: length %d", ErrBadKey, len(s))
	}
	var (
		seen [alphabet.Size]bool
		i    int
		c    byte
	)
	for i = 0; i < alphabet.Size; i++ {
		c = alphabet.Upper(s[i])
		if !alphabet.IsUpper(c) {
			return k, fmt.Errorf("%w: %q is not a letter", ErrBadKey, s[i])
		}
		if seen[c-'A'] {
			return k, fmt.Errorf("%w: %q repeated", ErrBadKey, c)
		}
		seen[c-'A'] = true
		k[i] = c
	}
	return k, nil
}

// Swap returns a copy of k with the images of letters a and b exchanged.
// a and b are uppercase letters; a == b returns k unchanged.
func (k Key) Swap(a, b byte) Key {
	ia, ib := a-'A', b-'A'
	k[ia], k[ib] = k[ib], k[ia]
	return k
}

// Inverse returns the encode-direction key: Inverse()[p] is the ciphertext
// letter for plaintext letter 'A'+p.
func (k Key) Inverse() Key {
	var (
		inv Key
		i   int
	)
	for i = 0; i < alphabet.Size; i++ {
		inv[k[i]-'A'] = byte('A' + i)
	}
	return inv
}

// String renders k as its A–Z ordered image string.
func (k Key) String() string { return string(k[:]) }

// Apply maps every letter of text through k, preserving case; other bytes
// pass through.
func (k Key) Apply(text string) string {
	var (
		out = make([]byte, len(text))
		i   int
		c   byte
	)
	for i = 0; i < len(text); i++ {
		c = text[i]
		switch {
		case alphabet.IsUpper(c):
			out[i] = k[c-'A']
		case alphabet.IsLower(c):
			out[i] = k[c-'a'] - 'A' + 'a'
		default:
			out[i] = c
		}
	}
	return string(out)
}

// Decrypt decodes ciphertext with the decode-direction key k.
func Decrypt(text string, k Key) string { return k.Apply(text) }

// Encrypt encodes plaintext so that Decrypt(Encrypt(p, k), k) == p.
func Encrypt(text string, k Key) string { return k.Inverse().Apply(text) }
