package parallel

import (
	"sync"
	"sync/atomic"

	"github.com/pathwalk/pathwalk/core"
)

// node is the lineage record pushed onto a worker's stack. Identical in
// shape to idastar's node: only g is carried, and ancestry cycle-checking
// walks the shared core.PathNode chain.
type node[N comparable] struct {
	core.PathNode[N]
	value N
	g     float64
}

// Options configures a Search.
type Options[N comparable] struct {
	// Target overrides the default "h(n) == 0" target rule when set.
	Target core.TargetFunc[N]

	// Workers is the number of worker goroutines. Must be >= 1.
	Workers int
}

// Option is a functional option for New.
type Option[N comparable] func(*Options[N])

// WithTargetPredicate overrides the default target rule with an explicit
// predicate over node values.
func WithTargetPredicate[N comparable](fn core.TargetFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Target = fn
	}
}

// WithWorkers sets the worker count. Values below 1 are rejected by New
// with core.ErrInvalidWorkers.
func WithWorkers[N comparable](w int) Option[N] {
	return func(o *Options[N]) {
		o.Workers = w
	}
}

const (
	colourWhite int32 = 0
	colourBlack int32 = 1
)

// processor is one worker's share of the search: its own stack plus the
// head/excDepth publication cursors that let other workers steal from
// it safely.
//
// head and excDepth are atomics so the owner and any thief can read them
// without taking mu; mu is only required around the compound
// read-modify-write sequences that move entries between stacks or that
// recompute the stealable window, matching the concurrency notes on
// head/excDepth's relaxed read / locked write discipline.
type processor[N comparable] struct {
	mu sync.Mutex

	stack []*node[N]

	// head is the lowest index still live on this stack; indices below
	// head have already been copied away by a thief.
	head atomic.Int32

	// excDepth is the exclusive upper bound of the stealable window
	// [head, excDepth): entries in that range are safe for another
	// worker to take. Entries at index >= excDepth are this worker's
	// private, actively-expanding tail.
	excDepth atomic.Int32

	// nextBound is written only by this processor's own worker
	// goroutine and read only by the driver after all workers for the
	// iteration have been joined, so it needs no synchronization.
	nextBound float64

	colour atomic.Int32
}

func newProcessor[N comparable]() *processor[N] {
	return &processor[N]{}
}

// depth returns the index of the top of the live stack, or -1 if the
// worker currently owns no live entries.
func (p *processor[N]) depth() int {
	return len(p.stack) - 1
}

// hasWork reports whether the worker has at least one live entry above
// head to pop.
func (p *processor[N]) hasWork() bool {
	return p.depth() >= int(p.head.Load())
}
