// Package alphabet holds the letter-level primitives shared by every solver
// in lvlcrypt: the canonical form used for scoring and the case-preserving
// rotation used for decoding.
//
// Only the 26 ASCII letters take part in any cipher. Everything else
// (digits, punctuation, whitespace, non-ASCII runes) passes through the
// cipher primitives untouched and is dropped by Canonicalize.
//
// Canonical text:
//
//	"The quick, brown fox!"  →  "THEQUICKBROWNFOX"
//
// Canonical text is scorer input only; solvers never return it.
//
// Rotation:
//
//	Rotate("Abc-z", 1)  →  "Bcd-a"
//
// Rotation is a group action on text: Rotate(Rotate(t, s), 26-s) == t.
package alphabet
