// Package fibheap implements a Fibonacci heap: a priority queue offering
// amortized O(1) Insert and DecreaseKey, and amortized O(log n) ExtractMin.
//
// What & why
//
//   - A Fibonacci heap is a collection of heap-ordered trees linked in a
//     circular root list, with a cached pointer to the minimum root.
//     ExtractMin removes the minimum root, promotes its children into the
//     root list, and consolidates same-degree roots pairwise until no two
//     roots share a degree — this is where the amortized bound comes from.
//   - DecreaseKey on a non-root node cuts it (and, via cascading cuts on
//     already-marked ancestors) out of its parent's child list and
//     splices it into the root list, so the cost of repeated
//     decrease-keys is amortized away rather than paid per call.
//   - This is the frontier data structure behind every best-first engine
//     in pathwalk (astar, greedy): each open-set entry gets a Handle, and
//     relaxing an edge to an already-open node is a DecreaseKey instead
//     of a linear scan.
//
// Handles
//
// Insert returns a *Handle that remains valid for the lifetime of the
// entry: callers hold onto it and pass it back to DecreaseKey, without
// needing to know where in the tree structure the entry currently lives.
// ExtractMin clears the handle it returns, so Cleared can serve as the
// "has this node already been expanded" check the best-first engines rely
// on (see astar.node.handle).
//
// Degenerate keys
//
// NaN keys are rejected by Insert and DecreaseKey (ErrNaNKey). Positive
// and negative infinity are accepted; a node with a +Inf key is never
// extracted before any node with a finite key.
//
// Failure model
//
// A stale handle (already extracted) or a DecreaseKey request whose new
// key is greater than the current key fails with a distinct,
// non-corrupting error — the heap's internal structure is never left
// inconsistent by a rejected call.
package fibheap
