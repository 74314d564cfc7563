package caesar

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/alphabet"
	"github.com/katalvlaran/lvlcrypt/score"
)

// ErrNilScorer is returned when Solve is called without a scorer.
var ErrNilScorer = errors.New("caesar: scorer is nil")

// Options configures Solve.
type Options struct {
	// Logger receives one Debug line per strict improvement. nil ⇒ no output.
	Logger *zap.Logger
}

// DefaultOptions returns Options with no diagnostics.
func DefaultOptions() Options { return Options{} }

// Result is the outcome of a shift search.
type Result struct {
	// Text is the input rotated by Rotation.
	Text string

	// Rotation is the decrypting rotation that won the scan.
	Rotation int

	// Shift is the recovered encryption key, (26−Rotation) mod 26.
	Shift int

	// Score is the scorer's value for Text.
	Score float64

	// Scores holds the score of every rotation, indexed by rotation.
	Scores [alphabet.Size]float64
}

// Encrypt rotates text forward by shift.
func Encrypt(text string, shift int) string { return alphabet.Rotate(text, shift) }

// Decrypt rotates text backward by shift.
func Decrypt(text string, shift int) string { return alphabet.Rotate(text, -shift) }

// Solve searches all 26 rotations of text and returns the best-scoring one.
// Ties resolve to the lowest rotation; text without letters therefore
// yields rotation 0.
func Solve(text string, scorer score.Scorer, opts Options) (Result, error) {
	if scorer == nil {
		return Result{}, ErrNilScorer
	}
	var log = opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		res  Result
		best float64
		s    int
		cand string
		sc   float64
	)
	for s = 0; s < alphabet.Size; s++ {
		cand = alphabet.Rotate(text, s)
		sc = scorer.Score(cand)
		res.Scores[s] = sc
		if s == 0 {
			best, res.Text = sc, cand
			continue
		}
		if sc > best {
			best = sc
			res.Text = cand
			res.Rotation = s
			log.Debug("caesar: new best",
				zap.Float64("score", sc),
				zap.Int("shift", (alphabet.Size-s)%alphabet.Size))
		}
	}

	res.Score = best
	res.Shift = (alphabet.Size - res.Rotation) % alphabet.Size
	return res, nil
}
