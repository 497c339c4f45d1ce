package core

import "errors"

// Sentinel errors shared by every engine's constructor. Each engine's own
// package may define additional errors for failures specific to that
// engine (e.g. fibheap.ErrStaleHandle), but invalid-argument failures that
// are common across engines live here so callers can compare against a
// single set of sentinels regardless of which engine rejected them.
var (
	// ErrNilGraph is returned when a constructor receives a nil Graph.
	ErrNilGraph = errors.New("pathwalk: graph must not be nil")

	// ErrNilHeuristic is returned when a constructor that requires a
	// Heuristic receives nil.
	ErrNilHeuristic = errors.New("pathwalk: heuristic must not be nil")

	// ErrInvalidMultiplier is returned when a heuristic multiplier is
	// less than 1.
	ErrInvalidMultiplier = errors.New("pathwalk: heuristic multiplier must be >= 1")

	// ErrInvalidWorkers is returned when a worker count is less than 1.
	ErrInvalidWorkers = errors.New("pathwalk: worker count must be >= 1")

	// ErrInvalidMaxSides is returned when a negative side-move budget is
	// supplied to a local search.
	ErrInvalidMaxSides = errors.New("pathwalk: maxSides must be >= 0")

	// ErrNilTarget is returned by engines that have no "heuristic is
	// zero" fallback for target identification (bfs) when constructed
	// without a target predicate.
	ErrNilTarget = errors.New("pathwalk: target predicate must not be nil")
)

// There is no ErrNilStart here: N is constrained only to comparable, which
// includes plain value types (int, structs, arrays) that have no notion of
// "absent". A Go int or struct is never nil, so there is no generically
// correct check a constructor could perform. A caller whose N happens to be
// a pointer or interface type is free to check start == nil before calling
// Run.
