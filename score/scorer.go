package score

// Scorer rates how English-like a text is. Higher is better.
type Scorer interface {
	Score(text string) float64
}

// Func adapts an ordinary function to the Scorer interface.
type Func func(text string) float64

// Score calls f(text).
func (f Func) Score(text string) float64 { return f(text) }

// Negate flips the orientation of s. Use it to plug a lower-is-better
// statistic into a solver.
func Negate(s Scorer) Scorer {
	return Func(func(text string) float64 { return -s.Score(text) })
}
