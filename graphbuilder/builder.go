package graphbuilder

import "github.com/pathwalk/pathwalk/core"

// Builder accumulates edges and produces an immutable AdjacencyGraph.
// The zero value is not usable; construct one with NewBuilder.
type Builder[N comparable] struct {
	edges map[N][]core.Edge[N]
}

// NewBuilder returns an empty Builder.
func NewBuilder[N comparable]() *Builder[N] {
	return &Builder[N]{edges: make(map[N][]core.Edge[N])}
}

// AddEdge adds an unweighted, unlabeled edge (weight 1) from from to to.
// Returns the receiver so calls can be chained.
func (b *Builder[N]) AddEdge(from, to N) *Builder[N] {
	return b.AddLabeledEdge(from, to, 1, "")
}

// AddWeightedEdge adds an edge from from to to with the given weight and
// no label.
func (b *Builder[N]) AddWeightedEdge(from, to N, weight float64) *Builder[N] {
	return b.AddLabeledEdge(from, to, weight, "")
}

// AddLabeledEdge adds an edge from from to to with the given weight and
// label. Adding more than one edge between the same pair of nodes is
// allowed; all of them appear in the built graph's OutgoingEdges.
func (b *Builder[N]) AddLabeledEdge(from, to N, weight float64, label string) *Builder[N] {
	b.edges[from] = append(b.edges[from], core.Edge[N]{Label: label, Weight: weight, Destination: to})
	return b
}

// Build returns an AdjacencyGraph holding a snapshot of every edge added
// so far. The Builder remains usable afterwards; later mutations do not
// affect a graph already built.
func (b *Builder[N]) Build() *AdjacencyGraph[N] {
	edges := make(map[N][]core.Edge[N], len(b.edges))
	for n, es := range b.edges {
		edges[n] = append([]core.Edge[N](nil), es...)
	}
	return &AdjacencyGraph[N]{edges: edges}
}

// AdjacencyGraph is an immutable core.Graph backed by a map of node to
// its outgoing edges. Build it with Builder; there is no exported
// constructor, since a graph with no edges added is indistinguishable
// from one that was never built correctly.
type AdjacencyGraph[N comparable] struct {
	edges map[N][]core.Edge[N]
}

// OutgoingEdges implements core.Graph. The returned slice must not be
// mutated by the caller; it is shared across every call for the same
// node.
func (g *AdjacencyGraph[N]) OutgoingEdges(node N) []core.Edge[N] {
	return g.edges[node]
}
