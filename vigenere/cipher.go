package vigenere

import "github.com/katalvlaran/lvlcrypt/alphabet"

// Encrypt enciphers text with key. Non-letters pass through and do not
// advance the key. An empty key returns text unchanged.
func Encrypt(text string, key Key) string { return apply(text, key, 1) }

// Decrypt deciphers text with key; Decrypt(Encrypt(t, k), k) == t.
func Decrypt(text string, key Key) string { return apply(text, key, -1) }

// apply shifts the i-th letter of text by dir·(key[i mod len] − 'A').
func apply(text string, key Key, dir int) string {
	var n = key.Len()
	if n == 0 {
		return text
	}

	var (
		out = make([]byte, len(text))
		i   int // byte position in text
		j   int // letter position, drives the key
		c   byte
	)
	for i = 0; i < len(text); i++ {
		c = text[i]
		if !alphabet.IsLetter(c) {
			out[i] = c
			continue
		}
		out[i] = alphabet.RotateLetter(c, dir*int(key.letters[j%n]-'A'))
		j++
	}
	return string(out)
}
