package vigenere

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/alphabet"
	"github.com/katalvlaran/lvlcrypt/internal/rng"
	"github.com/katalvlaran/lvlcrypt/score"
)

// Defaults used by DefaultOptions.
const (
	// DefaultMaxKeyLength bounds the period scan to [1, 20).
	DefaultMaxKeyLength = 20

	// DefaultStallLimit stops the key search after more than this many
	// consecutive iterations without improvement.
	DefaultStallLimit = 10

	// iterationsPerKeyLength derives the outer iteration budget from MaxKeyLength.
	iterationsPerKeyLength = 5
)

// Options configures Solve.
type Options struct {
	// MaxKeyLength is the exclusive upper bound of the period scan (≥ 2).
	MaxKeyLength int

	// KeyLength, when > 0, skips period estimation and searches keys of
	// exactly this length.
	KeyLength int

	// Iterations is the outer iteration budget. DefaultOptions sets it to
	// 5 × MaxKeyLength.
	Iterations int

	// StallLimit is the number of consecutive non-improving iterations
	// tolerated before stopping.
	StallLimit int

	// Seed seeds the position stream when Rand is nil. 0 ⇒ rng.DefaultSeed.
	Seed int64

	// Rand, if non-nil, is used instead of a seeded stream. Not goroutine-safe.
	Rand *rand.Rand

	// Logger receives one Debug line per improvement of the best key.
	Logger *zap.Logger
}

// DefaultOptions returns MaxKeyLength 20, Iterations 100, StallLimit 10.
func DefaultOptions() Options {
	return Options{
		MaxKeyLength: DefaultMaxKeyLength,
		Iterations:   IterationsFor(DefaultMaxKeyLength),
		StallLimit:   DefaultStallLimit,
	}
}

// IterationsFor returns the default outer iteration budget for a scan bounded
// by maxKeyLength.
func IterationsFor(maxKeyLength int) int { return iterationsPerKeyLength * maxKeyLength }

func (o Options) validate() error {
	switch {
	case o.KeyLength < 0:
		return fmt.Errorf("%w: key length %d < 0", ErrBadOptions, o.KeyLength)
	case o.KeyLength == 0 && o.MaxKeyLength < 2:
		return fmt.Errorf("%w: %w", ErrBadOptions, ErrBadMaxPeriod)
	case o.Iterations < 0:
		return fmt.Errorf("%w: iterations %d < 0", ErrBadOptions, o.Iterations)
	case o.StallLimit < 0:
		return fmt.Errorf("%w: stall limit %d < 0", ErrBadOptions, o.StallLimit)
	}
	return nil
}

// Result is the outcome of a Vigenère key search.
type Result struct {
	// Text is the input decrypted with Key.
	Text string

	// Key is the best key found.
	Key Key

	// Score is the scorer's value for Text.
	Score float64

	// Period is the period estimate the search used. When Options.KeyLength
	// was given, Period.Length equals it and Period.IOC is measured there.
	Period Period

	// Iterations is the number of outer iterations actually run.
	Iterations int
}

// Solve estimates the key length and searches for the key, as described in
// the package documentation.
//
// Errors: ErrNilScorer, ErrBadOptions. The search itself never fails.
func Solve(text string, scorer score.Scorer, opts Options) (Result, error) {
	if scorer == nil {
		return Result{}, ErrNilScorer
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	period, err := estimate(text, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		r   = rng.Resolve(opts.Rand, opts.Seed)
		log = opts.Logger
	)
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("vigenere: key length", zap.Int("length", period.Length), zap.Float64("ioc", period.IOC))

	var (
		best      = Neutral(period.Length)
		bestText  = Decrypt(text, best)
		bestScore = scorer.Score(bestText)
		stall     int
		iter      int
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		pos := r.Intn(period.Length)
		key, keyText, keyScore := scanPosition(text, best, pos, scorer)

		if keyScore > bestScore {
			best, bestText, bestScore = key, keyText, keyScore
			stall = 0
			log.Debug("vigenere: new best",
				zap.Int("iteration", iter),
				zap.Float64("score", bestScore),
				zap.Stringer("key", best))
			continue
		}
		stall++
		if stall > opts.StallLimit {
			iter++
			break
		}
	}

	return Result{
		Text:       bestText,
		Key:        best,
		Score:      bestScore,
		Period:     period,
		Iterations: iter,
	}, nil
}

// estimate returns the period to search: the fixed KeyLength if given,
// otherwise GuessPeriod over [1, MaxKeyLength).
func estimate(text string, opts Options) (Period, error) {
	if opts.KeyLength > 0 {
		avg, err := ScanPeriods(text, opts.KeyLength+1)
		if err != nil {
			return Period{}, err
		}
		return Period{Length: opts.KeyLength, IOC: avg[opts.KeyLength]}, nil
	}
	return GuessPeriod(text, opts.MaxKeyLength)
}

// scanPosition tries every letter at position pos of base and returns the
// first best-scoring variant.
func scanPosition(text string, base Key, pos int, scorer score.Scorer) (Key, string, float64) {
	var (
		bestKey   Key
		bestText  string
		bestScore float64
		i         int
	)
	for i = 0; i < alphabet.Size; i++ {
		k := base.With(pos, byte('A'+i))
		t := Decrypt(text, k)
		s := scorer.Score(t)
		if i == 0 || s > bestScore {
			bestKey, bestText, bestScore = k, t, s
		}
	}
	return bestKey, bestText, bestScore
}
