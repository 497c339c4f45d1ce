// Package parallel implements IDA* with a pool of worker goroutines that
// search disjoint parts of the frontier cooperatively, using work
// stealing to rebalance load and a Dijkstra–Safra-style token ring to
// detect when no worker has any work left.
//
// Why work stealing
//
// Unlike astar's shared priority queue, IDA*'s state is an explicit
// per-search stack; sharing one stack across goroutines would serialise
// all of them on a single lock. Instead each worker owns its own stack
// and only a narrow, explicitly published window of it (the
// head..excDepth range) is ever touched by another goroutine, and only
// under that worker's own lock.
//
// Why a token ring
//
// A worker that runs out of stack cannot tell, on its own, whether the
// search is finished or whether another worker merely hasn't gotten
// around to donating work yet. The token ring answers that question
// without a barrier: a single token circulates worker W-1 -> ... -> 0,
// picking up a BLACK mark whenever it passes through (or past) a worker
// that has done something — received a steal that could race with the
// probe — since the last full circuit. A circuit that returns to worker
// 0 fully WHITE proves no work was in flight during that circuit.
//
// A worker fault (a panic inside a worker goroutine) is converted into a
// WorkerFault returned from Run rather than crashing the process.
package parallel
