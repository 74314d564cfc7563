package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/lvlcrypt/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalize_StripsAndFolds verifies that only letters survive and
// that they come out uppercase.
func TestCanonicalize_StripsAndFolds(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already canonical", "HELLO", "HELLO"},
		{"mixed case", "HeLLo", "HELLO"},
		{"punctuation and digits", "It's 4:30, Bob!", "ITSBOB"},
		{"whitespace", " a\tb\nc ", "ABC"},
		{"non-ascii letters dropped", "café Ωmega", "CAFMEGA"},
		{"invalid utf-8 dropped", "a\xffb", "AB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, alphabet.Canonicalize(tc.in))
		})
	}
}

// TestRotate_Basic checks rotation within each case and pass-through of non-letters.
func TestRotate_Basic(t *testing.T) {
	assert.Equal(t, "YMJ VZNHP GWTBS KTC", alphabet.Rotate("THE QUICK BROWN FOX", 5))
	assert.Equal(t, "Bcd-a", alphabet.Rotate("Abc-z", 1))
	assert.Equal(t, "Zab-y", alphabet.Rotate("Abc-z", -1), "negative shifts wrap")
	assert.Equal(t, "Abc-z", alphabet.Rotate("Abc-z", 26), "full turn is identity")
	assert.Equal(t, "iémmp", alphabet.Rotate("héllo", 1), "non-ascii runes pass through")
}

// TestRotate_GroupAction verifies Rotate(Rotate(t, s), 26-s) == t for every s.
func TestRotate_GroupAction(t *testing.T) {
	texts := []string{
		"",
		"The Quick Brown Fox Jumps Over The Lazy Dog.",
		"12345 !@#$% ünïcödé, MiXeD cAsE\n\ttabs",
	}
	var s int
	for _, text := range texts {
		for s = 0; s < alphabet.Size; s++ {
			back := alphabet.Rotate(alphabet.Rotate(text, s), (alphabet.Size-s)%alphabet.Size)
			require.Equal(t, text, back, "shift %d", s)
		}
	}
}

// TestCounts ignores non-letters and folds case.
func TestCounts(t *testing.T) {
	counts, total := alphabet.Counts("Aa b!z")
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 1, counts[25])
}

// TestMod26 covers negative and large inputs.
func TestMod26(t *testing.T) {
	assert.Equal(t, 0, alphabet.Mod26(0))
	assert.Equal(t, 25, alphabet.Mod26(-1))
	assert.Equal(t, 1, alphabet.Mod26(53))
	assert.Equal(t, 24, alphabet.Mod26(-28))
}

// TestIndexAndUpper covers the letter helpers.
func TestIndexAndUpper(t *testing.T) {
	assert.Equal(t, 0, alphabet.Index('a'))
	assert.Equal(t, 25, alphabet.Index('Z'))
	assert.Equal(t, -1, alphabet.Index('!'))
	assert.Equal(t, byte('Q'), alphabet.Upper('q'))
	assert.Equal(t, byte('7'), alphabet.Upper('7'))
}
