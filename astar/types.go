package astar

import "github.com/pathwalk/pathwalk/core"

// Options configures a Search. The zero value is not valid on its own;
// use DefaultOptions as the base for functional overrides.
type Options[N comparable] struct {
	// HMul scales the heuristic term of the frontier key: f = g + h*HMul.
	// Must be >= 1. 1 yields classic A* (or Dijkstra, with a zero
	// heuristic); values above 1 yield weighted A*.
	HMul float64

	// Target overrides the default "h(n) == 0" target rule when set.
	Target core.TargetFunc[N]
}

// Option is a functional option for New.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns the baseline configuration: HMul 1, no target
// predicate override.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{HMul: 1}
}

// WithHeuristicMultiplier sets the heuristic multiplier used to compute
// the frontier key. Values below 1 are rejected by New with
// core.ErrInvalidMultiplier.
func WithHeuristicMultiplier[N comparable](m float64) Option[N] {
	return func(o *Options[N]) {
		o.HMul = m
	}
}

// WithTargetPredicate overrides the default target rule ("heuristic
// value of the popped node is zero") with an explicit predicate over
// node values.
func WithTargetPredicate[N comparable](fn core.TargetFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Target = fn
	}
}
