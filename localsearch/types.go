package localsearch

import "math/rand"

// Options configures a Search.
type Options[N comparable] struct {
	// RandomNode, if set, lets RunFromRandom pick a starting node without
	// the caller supplying one explicitly.
	RandomNode func() N

	// MaxSides bounds how many equal-valued (plateau) moves the search
	// makes in total: the count is not reset by an improving move, and
	// the search stops right after the move that brings it to MaxSides.
	// Must be >= 0.
	MaxSides int

	// Rand is the search's own random source, consulted whenever more
	// than one neighbour ties for the best heuristic value. Instance
	// scoped: never shared across concurrent Run calls on the same
	// Search.
	Rand *rand.Rand
}

// Option is a functional option for New.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns the baseline configuration: MaxSides 0, so the
// search stops after its first plateau move, and a deterministically
// seeded random source.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		MaxSides: 0,
		Rand:     rand.New(rand.NewSource(1)),
	}
}

// WithRandomNodeSupplier sets the supplier RunFromRandom uses to pick a
// starting node.
func WithRandomNodeSupplier[N comparable](fn func() N) Option[N] {
	return func(o *Options[N]) {
		o.RandomNode = fn
	}
}

// WithMaxSides sets the plateau-move budget. New rejects negative values
// with core.ErrInvalidMaxSides.
func WithMaxSides[N comparable](n int) Option[N] {
	return func(o *Options[N]) {
		o.MaxSides = n
	}
}

// WithRandSource overrides the search's random source, for reproducible
// tie-breaking among equally good neighbours.
func WithRandSource[N comparable](r *rand.Rand) Option[N] {
	return func(o *Options[N]) {
		o.Rand = r
	}
}
