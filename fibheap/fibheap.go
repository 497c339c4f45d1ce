package fibheap

import "math"

// phi is the golden ratio, used only to size the consolidation array; a
// Fibonacci heap of n nodes never has a root of degree above
// roughly log_phi(n).
const phi = 1.6180339887498949

// Heap is a Fibonacci heap of values of type V, ordered by a float64 key
// supplied at Insert time. The zero value is not ready to use; call New.
type Heap[V any] struct {
	min  *node[V]
	size int
}

// New returns an empty heap.
func New[V any]() *Heap[V] {
	return &Heap[V]{}
}

// Size returns the number of live (non-extracted) entries.
func (h *Heap[V]) Size() int {
	return h.size
}

// IsEmpty reports whether the heap holds no live entries.
func (h *Heap[V]) IsEmpty() bool {
	return h.size == 0
}

// Insert adds value under key and returns a handle to it. It fails only
// if key is NaN.
func (h *Heap[V]) Insert(key float64, value V) (*Handle[V], error) {
	if math.IsNaN(key) {
		return nil, ErrNaNKey
	}
	n := &node[V]{key: key, value: value}
	n.left, n.right = n, n
	if h.min == nil {
		h.min = n
	} else {
		mergeCircular(h.min, n)
		if n.key < h.min.key {
			h.min = n
		}
	}
	h.size++
	return &Handle[V]{n: n}, nil
}

// ExtractMin removes and returns a handle to the minimum-key entry. The
// returned handle is cleared: Handle.Cleared reports true on it from this
// point on.
func (h *Heap[V]) ExtractMin() (*Handle[V], error) {
	z := h.min
	if z == nil {
		return nil, ErrEmptyHeap
	}

	if z.child != nil {
		c := z.child
		for cur := c; ; {
			cur.parent = nil
			cur.marked = false
			cur = cur.right
			if cur == c {
				break
			}
		}
		mergeCircular(z, c)
		z.child = nil
	}

	next := z.right
	if next == z {
		h.min = nil
	} else {
		z.left.right = next
		next.left = z.left
		h.min = next
	}
	z.left, z.right = nil, nil

	h.size--
	if h.min != nil {
		h.consolidate()
	}

	z.cleared = true
	z.parent = nil
	return &Handle[V]{n: z}, nil
}

// DecreaseKey lowers hd's key to newKey. It fails without modifying the
// heap if hd is stale, newKey is NaN, or newKey is greater than hd's
// current key.
func (h *Heap[V]) DecreaseKey(hd *Handle[V], newKey float64) error {
	if hd == nil || hd.n == nil || hd.n.cleared {
		return ErrStaleHandle
	}
	if math.IsNaN(newKey) {
		return ErrNaNKey
	}
	n := hd.n
	if newKey > n.key {
		return ErrKeyIncrease
	}
	n.key = newKey

	p := n.parent
	if p != nil && n.key < p.key {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if h.min == nil || n.key < h.min.key {
		h.min = n
	}
	return nil
}

// cut detaches n from parent p's child list and splices it into the root
// list as an unmarked root.
func (h *Heap[V]) cut(n, p *node[V]) {
	if n.right == n {
		p.child = nil
	} else {
		n.left.right = n.right
		n.right.left = n.left
		if p.child == n {
			p.child = n.right
		}
	}
	p.degree--

	n.parent = nil
	n.marked = false
	n.left, n.right = n, n
	mergeCircular(h.min, n)
}

// cascadingCut implements the marking rule that bounds how unbalanced a
// Fibonacci heap's trees can become: the first time a node loses a child
// it is marked; the second time, it is itself cut and the cut propagates
// to its own parent.
func (h *Heap[V]) cascadingCut(n *node[V]) {
	p := n.parent
	if p == nil {
		return
	}
	if !n.marked {
		n.marked = true
		return
	}
	h.cut(n, p)
	h.cascadingCut(p)
}

// consolidate merges same-degree roots pairwise until every root has a
// distinct degree, then recomputes the cached minimum. This is the step
// that amortizes the cost of the lazy work ExtractMin and cut defer.
func (h *Heap[V]) consolidate() {
	var roots []*node[V]
	for start, cur := h.min, h.min; ; {
		next := cur.right
		roots = append(roots, cur)
		cur = next
		if cur == start {
			break
		}
	}

	maxDeg := degreeBound(h.size)
	table := make([]*node[V], maxDeg)

	for _, w := range roots {
		w.left, w.right = w, w
		x := w
		d := x.degree
		for d < len(table) && table[d] != nil {
			y := table[d]
			if x.key > y.key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
		}
		if d >= len(table) {
			table = append(table, make([]*node[V], d-len(table)+1)...)
		}
		table[d] = x
		x.degree = d
	}

	h.min = nil
	for _, w := range table {
		if w == nil {
			continue
		}
		if h.min == nil {
			h.min = w
		} else {
			mergeCircular(h.min, w)
			if w.key < h.min.key {
				h.min = w
			}
		}
	}
}

// link makes y a child of x. x.key <= y.key is assumed by the caller.
func (h *Heap[V]) link(y, x *node[V]) {
	y.left, y.right = y, y
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		mergeCircular(x.child, y)
	}
	x.degree++
}

// mergeCircular splices circular doubly-linked list b into circular
// doubly-linked list a, in place. Both a and b must be non-nil nodes
// belonging to (possibly single-element) circular lists.
func mergeCircular[V any](a, b *node[V]) {
	aRight := a.right
	bLeft := b.left
	a.right = b
	b.left = a
	aRight.left = bLeft
	bLeft.right = aRight
}

// degreeBound returns a safe upper bound on the degree of any root in a
// heap of n nodes, used to size the consolidation table. log base phi
// grows slowly enough that this stays small even for very large heaps.
func degreeBound(n int) int {
	if n < 2 {
		return 2
	}
	d := int(math.Log(float64(n))/math.Log(phi)) + 2
	if d < 2 {
		d = 2
	}
	return d
}
