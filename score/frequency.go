package score

import (
	"math"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// Table holds per-letter frequencies in percent, indexed A..Z.
type Table [alphabet.Size]float64

// EnglishFrequencies is the published English letter distribution (percent).
// The entries sum to 100.01 because of rounding in the source table.
var EnglishFrequencies = Table{
	8.55, 1.60, 3.16, 3.87, 12.10, 2.18, 2.09, // A-G
	4.96, 7.33, 0.22, 0.81, 4.21, 2.53, 7.17, // H-N
	7.47, 2.07, 0.10, 6.33, 6.73, 8.94, 2.68, // O-U
	1.06, 1.83, 0.19, 1.72, 0.11, // V-Z
}

// LetterFrequency scores text by single-letter fit to a reference table.
// Score returns −χ², so identical distributions score 0 and everything else
// scores below it.
type LetterFrequency struct {
	expected [alphabet.Size]float64 // proportions, not percent
}

// NewLetterFrequency builds a scorer from a percentage table.
// Returns ErrBadTable if any entry is non-positive, NaN or ±Inf.
func NewLetterFrequency(table Table) (*LetterFrequency, error) {
	lf := &LetterFrequency{}
	var i int
	for i = 0; i < alphabet.Size; i++ {
		if !(table[i] > 0) || math.IsInf(table[i], 0) {
			return nil, ErrBadTable
		}
		lf.expected[i] = table[i] / 100.0
	}
	return lf, nil
}

// English returns a LetterFrequency over EnglishFrequencies.
func English() *LetterFrequency {
	lf, _ := NewLetterFrequency(EnglishFrequencies)
	return lf
}

// ChiSquared returns Σ (O−E)²/E over all 26 letters, where O is the observed
// proportion of each letter in the canonical form of text and E the expected
// proportion. Lower is more English-like. Text without letters yields 0.
//
// Complexity: O(len(text)).
func (lf *LetterFrequency) ChiSquared(text string) float64 {
	counts, total := alphabet.Counts(text)
	if total == 0 {
		return 0
	}

	var (
		chi  float64
		o, d float64
		n    = float64(total)
		i    int
	)
	for i = 0; i < alphabet.Size; i++ {
		o = float64(counts[i]) / n
		d = o - lf.expected[i]
		chi += d * d / lf.expected[i]
	}
	return chi
}

// Score implements Scorer: −ChiSquared(text).
func (lf *LetterFrequency) Score(text string) float64 {
	return -lf.ChiSquared(text)
}

// ChiSquared is English().ChiSquared(text).
func ChiSquared(text string) float64 {
	return english.ChiSquared(text)
}

var english = English()
