// Package graphbuilder is a small convenience layer for assembling
// adjacency-list graphs that satisfy core.Graph without hand-writing a
// map[N][]core.Edge[N] type at every call site. It plays no role in any
// search engine; it exists purely to make constructing fixtures and
// sample graphs less repetitive.
package graphbuilder
