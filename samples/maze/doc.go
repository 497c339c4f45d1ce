// Package maze is a sample problem domain exercising bfs and the other
// frontier engines over a grid with 8-directional movement and per-cell
// movement cost. A Cell is its (row, col) pair; Grid adapts a grid of
// integer costs (zero or less meaning blocked) into core.Edge values.
package maze
