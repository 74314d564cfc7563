package alphabet

// Size is the number of letters in the alphabet.
const Size = 26

// Letters is the uppercase alphabet in order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool { return c >= 'a' && c <= 'z' }

// IsLetter reports whether c is an ASCII letter of either case.
func IsLetter(c byte) bool { return IsUpper(c) || IsLower(c) }

// isLetterRune is IsLetter for runes; anything outside ASCII is not a letter.
func isLetterRune(r rune) bool {
	return r < 0x80 && IsLetter(byte(r))
}

// Index returns the 0-based alphabet position of a letter of either case,
// or -1 if c is not a letter.
func Index(c byte) int {
	switch {
	case IsUpper(c):
		return int(c - 'A')
	case IsLower(c):
		return int(c - 'a')
	}
	return -1
}

// Upper returns c in uppercase if it is a lowercase letter, c otherwise.
func Upper(c byte) byte {
	if IsLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

// Mod26 reduces x into [0, 26) for any sign of x.
func Mod26(x int) int {
	x %= Size
	if x < 0 {
		x += Size
	}
	return x
}

// Counts returns per-letter occurrence counts of the letters in s.
// Non-letters are ignored, so s need not be canonical.
func Counts(s string) (counts [Size]int, total int) {
	var i, idx int
	for i = 0; i < len(s); i++ {
		idx = Index(s[i])
		if idx < 0 {
			continue
		}
		counts[idx]++
		total++
	}
	return counts, total
}
