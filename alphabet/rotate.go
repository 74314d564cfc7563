package alphabet

// RotateLetter shifts a single letter by shift positions within its own case.
// Non-letters are returned unchanged. shift may be any integer.
func RotateLetter(c byte, shift int) byte {
	switch {
	case IsUpper(c):
		return byte(Mod26(int(c-'A')+shift)) + 'A'
	case IsLower(c):
		return byte(Mod26(int(c-'a')+shift)) + 'a'
	}
	return c
}

// Rotate shifts every letter of text by shift positions within its case
// (A–Z wraps to A–Z, a–z to a–z). Everything else passes through.
//
// Multi-byte UTF-8 sequences never contain ASCII bytes, so a byte-wise walk
// leaves them intact.
//
// Complexity: O(len(text)).
func Rotate(text string, shift int) string {
	var s = Mod26(shift)
	if s == 0 {
		return text
	}

	var (
		out = make([]byte, len(text))
		i   int
	)
	for i = 0; i < len(text); i++ {
		out[i] = RotateLetter(text[i], s)
	}
	return string(out)
}
