package substitution

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/internal/rng"
	"github.com/katalvlaran/lvlcrypt/score"
)

// DefaultEpochs is the proposal budget used by DefaultOptions.
const DefaultEpochs = 10_000

// Selection chooses which state Solve reports.
type Selection int

const (
	// SelectCurrent reports the state live when the budget runs out. A worse
	// move accepted late in the run is therefore reported as-is.
	SelectCurrent Selection = iota

	// SelectBest reports the best state visited during the run.
	SelectBest
)

// Options configures Solve.
type Options struct {
	// Epochs is the number of proposals. 0 returns the identity decoding.
	Epochs int

	// Selection picks the reported state (SelectCurrent by default).
	Selection Selection

	// Seed seeds the proposal stream when Rand is nil. 0 ⇒ rng.DefaultSeed.
	Seed int64

	// Rand, if non-nil, is used instead of a seeded stream. Not goroutine-safe.
	Rand *rand.Rand

	// Logger receives one Debug line per improvement of the best state.
	Logger *zap.Logger
}

// DefaultOptions returns Options with DefaultEpochs and SelectCurrent.
func DefaultOptions() Options {
	return Options{Epochs: DefaultEpochs, Selection: SelectCurrent}
}

func (o Options) validate() error {
	if o.Epochs < 0 {
		return fmt.Errorf("%w: epochs %d < 0", ErrBadOptions, o.Epochs)
	}
	if o.Selection != SelectCurrent && o.Selection != SelectBest {
		return fmt.Errorf("%w: unknown selection %d", ErrBadOptions, o.Selection)
	}
	return nil
}

// Result is the outcome of a substitution search.
type Result struct {
	// Text is the input decoded with Key.
	Text string

	// Key is the reported decode-direction permutation.
	Key Key

	// Cipher is the encryption alphabet, Key.Inverse().
	Cipher Key

	// Score is the scorer's value for Text.
	Score float64

	// BestScore is the best score seen during the run (≥ Score).
	BestScore float64

	// Accepted counts accepted proposals, worse ones included.
	Accepted int
}

// Solve runs the hill climb described in the package documentation.
//
// Errors: ErrNilScorer, ErrBadOptions. The search itself never fails; the
// quality of the answer is probabilistic.
func Solve(text string, scorer score.Scorer, opts Options) (Result, error) {
	if scorer == nil {
		return Result{}, ErrNilScorer
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		r   = rng.Resolve(opts.Rand, opts.Seed)
		log = opts.Logger
	)
	if log == nil {
		log = zap.NewNop()
	}

	var (
		current      = Identity()
		currentText  = current.Apply(text)
		currentScore = scorer.Score(currentText)
		best         = current
		bestText     = currentText
		bestScore    = currentScore
		accepted     int

		cand      Key
		candText  string
		candScore float64
		epoch     int
	)
	for epoch = 0; epoch < opts.Epochs; epoch++ {
		cand = current.Swap(rng.Letter(r), rng.Letter(r))
		candText = cand.Apply(text)
		candScore = scorer.Score(candText)

		if !accept(candScore, currentScore, r) {
			continue
		}
		current, currentText, currentScore = cand, candText, candScore
		accepted++

		if currentScore > bestScore {
			best, bestText, bestScore = current, currentText, currentScore
			log.Debug("substitution: new best",
				zap.Int("epoch", epoch),
				zap.Float64("score", bestScore),
				zap.Stringer("key", best))
		}
	}

	res := Result{BestScore: bestScore, Accepted: accepted}
	switch opts.Selection {
	case SelectBest:
		res.Key, res.Text, res.Score = best, bestText, bestScore
	default:
		res.Key, res.Text, res.Score = current, currentText, currentScore
	}
	res.Cipher = res.Key.Inverse()
	return res, nil
}

// accept is the Metropolis rule at temperature 1. A strictly better candidate
// is always taken; otherwise with probability exp(cand − cur).
func accept(cand, cur float64, r *rand.Rand) bool {
	if cand > cur {
		return true
	}
	return r.Float64() < math.Exp(cand-cur)
}
