package parallel

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pathwalk/pathwalk/core"
)

// DefaultOptions returns the baseline configuration: one worker per
// available core, no target predicate override.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{Workers: runtime.NumCPU()}
}

// Search is a parallel IDA* engine over a graph of node values N.
type Search[N comparable] struct {
	graph     core.Graph[N]
	heuristic core.Heuristic[N]
	opts      Options[N]
}

// New constructs a Search with a pool of Options.Workers worker
// goroutines (default runtime.NumCPU()).
func New[N comparable](graph core.Graph[N], heuristic core.Heuristic[N], opts ...Option[N]) (*Search[N], error) {
	if graph == nil {
		return nil, core.ErrNilGraph
	}
	if heuristic == nil {
		return nil, core.ErrNilHeuristic
	}
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, core.ErrInvalidWorkers
	}
	return &Search[N]{graph: graph, heuristic: heuristic, opts: cfg}, nil
}

// solutionSlot is single-writer-once, multi-reader: the first worker to
// find a target publishes it, every later publish is a no-op.
type solutionSlot[N comparable] struct {
	mu    sync.Mutex
	found *node[N]
}

func (s *solutionSlot[N]) publish(n *node[N]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found == nil {
		s.found = n
	}
}

func (s *solutionSlot[N]) get() *node[N] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}

// ring is the token-ring termination detector's shared state. Colour
// and holder writes happen only while holding the current holder's turn;
// mu serialises the handful of fields the protocol touches.
type ring struct {
	mu          sync.Mutex
	holder      int
	tokenColour int32
}

// Run searches from start and returns the edges of a path to a target,
// or (nil, nil) if no target is reachable within the reachable
// subgraph. observe, if non-nil, is invoked (from whichever worker
// goroutine expands it) with every node's value expanded below the
// current bound; observe must be safe to call concurrently.
func (s *Search[N]) Run(start N, observe core.Observer[N]) ([]core.Edge[N], error) {
	bound := s.heuristic(start)
	if math.IsInf(bound, 1) {
		return nil, nil
	}

	W := s.opts.Workers
	for {
		procs := make([]*processor[N], W)
		for i := range procs {
			procs[i] = newProcessor[N]()
			procs[i].nextBound = math.Inf(1)
			procs[i].colour.Store(colourBlack)
		}
		root := &node[N]{value: start, g: 0}
		procs[0].stack = []*node[N]{root}

		var quit atomic.Bool
		sol := &solutionSlot[N]{}
		tok := &ring{holder: 0, tokenColour: colourBlack}

		g, _ := errgroup.WithContext(context.Background())
		for i := 0; i < W; i++ {
			id := i
			g.Go(func() error {
				return s.runWorker(id, procs, &quit, sol, tok, start, bound, observe)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if found := sol.get(); found != nil {
			return core.BuildPath(&found.PathNode), nil
		}

		nextBound := math.Inf(1)
		for _, p := range procs {
			if p.nextBound < nextBound {
				nextBound = p.nextBound
			}
		}
		if math.IsInf(nextBound, 1) {
			return nil, nil
		}
		bound = nextBound
	}
}

// runWorker is one worker's main loop for a single iteration: expand
// while it has private work, otherwise try to steal, otherwise
// participate in the termination probe.
func (s *Search[N]) runWorker(id int, procs []*processor[N], quit *atomic.Bool, sol *solutionSlot[N], tok *ring, start N, bound float64, observe core.Observer[N]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerFault{Worker: id, Cause: r}
			quit.Store(true)
		}
	}()

	me := procs[id]
	for {
		if quit.Load() || sol.get() != nil {
			return nil
		}
		if me.hasWork() {
			s.boundedStep(me, start, bound, observe, sol)
		} else if !trySteal(id, procs) {
			tokenPass(id, len(procs), quit, tok, me)
		}
	}
}

// boundedStep pops the top of me's stack, checks it against bound, and
// either records a tighter nextBound, publishes a solution, or pushes
// its non-ancestor successors and widens the stealable window.
func (s *Search[N]) boundedStep(me *processor[N], start N, bound float64, observe core.Observer[N], sol *solutionSlot[N]) {
	me.mu.Lock()
	top := len(me.stack) - 1
	if top < int(me.head.Load()) {
		// A thief took the remaining entries since hasWork was checked.
		me.mu.Unlock()
		return
	}
	cur := me.stack[top]
	me.stack = me.stack[:top]
	newDepth := len(me.stack) - 1
	if head := int(me.head.Load()); newDepth < head {
		mid := (newDepth + head) / 2
		if mid < head {
			mid = head
		}
		me.excDepth.Store(int32(mid))
	}
	me.mu.Unlock()

	h := s.heuristic(cur.value)
	f := cur.g + h
	if f > bound {
		if f < me.nextBound {
			me.nextBound = f
		}
		return
	}

	observe.Visit(cur.value)
	if s.isTarget(cur, h) {
		sol.publish(cur)
		return
	}

	var pushed []*node[N]
	for _, e := range s.graph.OutgoingEdges(cur.value) {
		if onAncestorChain(cur, start, e.Destination) {
			continue
		}
		edgeCopy := e
		nn := &node[N]{value: e.Destination, g: cur.g + e.Weight}
		nn.Parent = &cur.PathNode
		nn.Edge = &edgeCopy
		pushed = append(pushed, nn)
	}

	me.mu.Lock()
	me.stack = append(me.stack, pushed...)
	newTop := len(me.stack) - 1
	if newTop >= 0 {
		head := int(me.head.Load())
		mid := (newTop + head) / 2
		if mid > int(me.excDepth.Load()) {
			me.excDepth.Store(int32(mid))
		}
	}
	me.mu.Unlock()
}

func (s *Search[N]) isTarget(n *node[N], h float64) bool {
	if s.opts.Target != nil {
		return s.opts.Target(n.value)
	}
	return h == 0
}

// trySteal probes up to min(3, W-1) neighbours of id in a fixed rotation
// and copies the first stealable window it finds onto id's own stack.
func trySteal[N comparable](id int, procs []*processor[N]) bool {
	W := len(procs)
	if W <= 1 {
		return false
	}
	limit := 3
	if W-1 < limit {
		limit = W - 1
	}
	for k := 1; k <= limit; k++ {
		victimID := (id + k) % W
		victim := procs[victimID]

		victim.mu.Lock()
		head := int(victim.head.Load())
		exc := int(victim.excDepth.Load())
		if exc <= head || exc > len(victim.stack) {
			victim.mu.Unlock()
			continue
		}
		stolen := make([]*node[N], exc-head)
		copy(stolen, victim.stack[head:exc])
		victim.head.Store(int32(exc))
		if id > victimID {
			victim.colour.Store(colourBlack)
		}
		victim.mu.Unlock()

		me := procs[id]
		me.mu.Lock()
		me.stack = append(me.stack, stolen...)
		me.mu.Unlock()
		return true
	}
	return false
}

// tokenPass runs the Dijkstra–Safra-style termination check for id if id
// currently holds the token, otherwise sleeps briefly before the caller
// retries. Only the token holder reads or writes tok's fields.
func tokenPass[N comparable](id, workers int, quit *atomic.Bool, tok *ring, me *processor[N]) {
	tok.mu.Lock()
	if tok.holder != id {
		tok.mu.Unlock()
		time.Sleep(time.Millisecond)
		return
	}

	if id == 0 {
		if tok.tokenColour == colourWhite && me.colour.Load() == colourWhite {
			quit.Store(true)
			tok.mu.Unlock()
			return
		}
		tok.tokenColour = colourWhite
		me.colour.Store(colourWhite)
		tok.holder = workers - 1
	} else {
		if me.colour.Load() == colourBlack {
			tok.tokenColour = colourBlack
		}
		me.colour.Store(colourWhite)
		tok.holder = id - 1
	}
	tok.mu.Unlock()
}

// onAncestorChain reports whether v is the value of cur or of some
// ancestor of cur, walking the shared core.PathNode chain (see
// idastar.onAncestorChain for the same technique).
func onAncestorChain[N comparable](cur *node[N], start N, v N) bool {
	if cur.value == v {
		return true
	}
	for p := cur.Parent; p != nil; p = p.Parent {
		if p.Edge != nil {
			if p.Edge.Destination == v {
				return true
			}
		} else if start == v {
			return true
		}
	}
	return false
}
