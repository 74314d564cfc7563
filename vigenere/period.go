package vigenere

import "github.com/katalvlaran/lvlcrypt/alphabet"

// Reference values of the normalized index of coincidence.
const (
	// EnglishIOC is the expected IOC of English text (0.0667 × 26).
	EnglishIOC = 1.73

	// RandomIOC is the expected IOC of uniformly random letters (1/26 × 26).
	RandomIOC = 1.0
)

// Period is the result of a period scan.
type Period struct {
	// Length is the estimated key length.
	Length int

	// IOC is the average slice IOC at Length.
	IOC float64
}

// IndexOfCoincidence returns 26·Σ c(c−1) / (N(N−1)) over the letters of s.
// Non-letters are ignored. Fewer than two letters yield 0.
func IndexOfCoincidence(s string) float64 {
	counts, n := alphabet.Counts(s)
	return iocFromCounts(&counts, n)
}

func iocFromCounts(counts *[alphabet.Size]int, n int) float64 {
	if n < 2 {
		return 0
	}
	var (
		num int
		i   int
	)
	for i = 0; i < alphabet.Size; i++ {
		num += counts[i] * (counts[i] - 1)
	}
	return alphabet.Size * float64(num) / float64(n*(n-1))
}

// ScanPeriods returns the average slice IOC for every period in
// [1, maxPeriod). Index p of the result holds period p; index 0 is unused.
// Slices too short to measure contribute 0.
//
// Complexity: O(maxPeriod · len(text)).
func ScanPeriods(text string, maxPeriod int) ([]float64, error) {
	if maxPeriod < 2 {
		return nil, ErrBadMaxPeriod
	}

	var (
		c      = alphabet.Canonicalize(text)
		avg    = make([]float64, maxPeriod)
		counts = make([][alphabet.Size]int, maxPeriod)
		sizes  = make([]int, maxPeriod)
		p, i   int
		sum    float64
	)
	for p = 1; p < maxPeriod; p++ {
		for i = 0; i < p; i++ {
			counts[i] = [alphabet.Size]int{}
			sizes[i] = 0
		}
		for i = 0; i < len(c); i++ {
			counts[i%p][c[i]-'A']++
			sizes[i%p]++
		}
		sum = 0
		for i = 0; i < p; i++ {
			sum += iocFromCounts(&counts[i], sizes[i])
		}
		avg[p] = sum / float64(p)
	}
	return avg, nil
}

// GuessPeriod estimates the key length of a Vigenère ciphertext as the
// period in [1, maxPeriod) with the highest average slice IOC. Ties go to
// the lowest period. Short or letterless input yields period 1.
//
// Errors: ErrBadMaxPeriod when maxPeriod < 2.
func GuessPeriod(text string, maxPeriod int) (Period, error) {
	avg, err := ScanPeriods(text, maxPeriod)
	if err != nil {
		return Period{}, err
	}

	var (
		best = Period{Length: 1, IOC: avg[1]}
		p    int
	)
	for p = 2; p < maxPeriod; p++ {
		if avg[p] > best.IOC {
			best = Period{Length: p, IOC: avg[p]}
		}
	}
	return best, nil
}
