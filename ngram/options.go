package ngram

import "fmt"

// FloorPolicy selects the log-probability assigned to n-grams absent from
// the table.
type FloorPolicy int

const (
	// FloorByTotal values an unseen n-gram at log(0.01/total), one hundredth
	// of a single observation. Unseen windows always score below seen ones.
	FloorByTotal FloorPolicy = iota

	// FloorByWidth values an unseen n-gram at log(0.01/n) where n is the gram
	// width. This matches the historical trigram scripts; with any realistic
	// corpus it ranks unseen windows above most seen ones.
	FloorByWidth
)

// String returns the policy name.
func (p FloorPolicy) String() string {
	switch p {
	case FloorByTotal:
		return "total"
	case FloorByWidth:
		return "width"
	}
	return fmt.Sprintf("FloorPolicy(%d)", int(p))
}

// ParseFloorPolicy maps "total"/"width" to a FloorPolicy.
func ParseFloorPolicy(s string) (FloorPolicy, error) {
	switch s {
	case "", "total":
		return FloorByTotal, nil
	case "width":
		return FloorByWidth, nil
	}
	return 0, fmt.Errorf("ngram: unknown floor policy %q", s)
}

// DefaultFloorPolicy is used when no WithFloorPolicy option is given.
const DefaultFloorPolicy = FloorByTotal

const panicFloorPolicyInvalid = "ngram: WithFloorPolicy: unknown policy"

// Option configures model construction.
type Option func(*options)

type options struct {
	floor FloorPolicy
}

// WithFloorPolicy sets how unseen n-grams are valued.
// Panics on a policy value outside the declared constants (programmer error).
func WithFloorPolicy(p FloorPolicy) Option {
	if p != FloorByTotal && p != FloorByWidth {
		panic(panicFloorPolicyInvalid)
	}
	return func(o *options) { o.floor = p }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{floor: DefaultFloorPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
