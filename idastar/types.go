package idastar

import "github.com/pathwalk/pathwalk/core"

// node is the lineage record pushed onto the DFS stack.
type node[N comparable] struct {
	core.PathNode[N]
	value N
	g     float64
}

// Options configures a Search.
type Options[N comparable] struct {
	// Target overrides the default "h(n) == 0" target rule when set.
	Target core.TargetFunc[N]
}

// Option is a functional option for New.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns the baseline configuration: no target
// predicate override.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{}
}

// WithTargetPredicate overrides the default target rule with an explicit
// predicate over node values.
func WithTargetPredicate[N comparable](fn core.TargetFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Target = fn
	}
}
