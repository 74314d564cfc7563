package ngram

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// Model is an immutable n-gram log-probability table.
type Model struct {
	n      int                // gram width, uniform across the table
	logp   map[string]float64 // gram → log(count/total)
	counts map[string]int64   // raw counts, kept for WriteTo
	total  int64              // Σ counts
	floor  float64            // log-probability of unseen grams
	policy FloorPolicy
}

// New builds a Model from a gram → count table. Grams are folded to
// uppercase; grams differing only in case are merged.
//
// Errors:
//   - ErrDegenerateModel if counts is empty or grams differ in length.
//   - ErrParse if a gram contains a non-letter or a count is not positive.
//
// Complexity: O(len(counts)).
func New(counts map[string]int64, opts ...Option) (*Model, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrDegenerateModel)
	}

	var (
		o      = gatherOptions(opts)
		merged = make(map[string]int64, len(counts))
		width  int
		key    string
	)
	for gram, c := range counts {
		if c <= 0 {
			return nil, fmt.Errorf("%w: gram %q has count %d", ErrParse, gram, c)
		}
		if !isLetters(gram) {
			return nil, fmt.Errorf("%w: gram %q is not letters only", ErrParse, gram)
		}
		if width == 0 {
			width = len(gram)
		} else if len(gram) != width {
			return nil, fmt.Errorf("%w: gram %q has width %d, want %d", ErrDegenerateModel, gram, len(gram), width)
		}
		key = strings.ToUpper(gram)
		merged[key] += c
	}

	return fromCounts(merged, width, o), nil
}

// fromCounts derives log-probabilities from validated, uppercase counts.
func fromCounts(counts map[string]int64, width int, o options) *Model {
	var total int64
	for _, c := range counts {
		total += c
	}

	m := &Model{
		n:      width,
		logp:   make(map[string]float64, len(counts)),
		counts: counts,
		total:  total,
		policy: o.floor,
	}
	var ft = float64(total)
	for gram, c := range counts {
		m.logp[gram] = math.Log(float64(c) / ft)
	}

	switch o.floor {
	case FloorByWidth:
		m.floor = math.Log(0.01 / float64(width))
	default:
		m.floor = math.Log(0.01 / ft)
	}
	return m
}

// isLetters reports whether s is non-empty and made of ASCII letters only.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	var i int
	for i = 0; i < len(s); i++ {
		if !alphabet.IsLetter(s[i]) {
			return false
		}
	}
	return true
}

// Score returns the sum of log-probabilities of every n-letter window of the
// canonical form of text, using the floor for unseen windows. A text with
// fewer than N() letters scores 0.
//
// Score is deterministic: same model and text, same result.
//
// Complexity: O(len(text)).
func (m *Model) Score(text string) float64 {
	var c = alphabet.Canonicalize(text)
	if len(c) < m.n {
		return 0
	}

	var (
		sum float64
		lp  float64
		ok  bool
		i   int
	)
	for i = 0; i+m.n <= len(c); i++ {
		if lp, ok = m.logp[c[i:i+m.n]]; ok {
			sum += lp
		} else {
			sum += m.floor
		}
	}
	return sum
}

// N returns the gram width.
func (m *Model) N() int { return m.n }

// Len returns the number of distinct grams.
func (m *Model) Len() int { return len(m.logp) }

// Total returns the sum of all counts.
func (m *Model) Total() int64 { return m.total }

// Floor returns the log-probability used for unseen grams.
func (m *Model) Floor() float64 { return m.floor }

// FloorPolicy returns the policy the floor was derived with.
func (m *Model) FloorPolicy() FloorPolicy { return m.policy }

// LogProb returns the log-probability of gram (case-insensitive) and whether
// it is in the table. Unknown grams report the floor and false.
func (m *Model) LogProb(gram string) (float64, bool) {
	lp, ok := m.logp[strings.ToUpper(gram)]
	if !ok {
		return m.floor, false
	}
	return lp, true
}

// Count returns the raw corpus count of gram (case-insensitive), 0 if absent.
func (m *Model) Count(gram string) int64 {
	return m.counts[strings.ToUpper(gram)]
}
