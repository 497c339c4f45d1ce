// Package nqueens is a sample problem domain exercising localsearch: the
// N-Queens placement problem, with one queen fixed per column (so a
// Board never needs more than n positions) and a Heuristic counting the
// pairs of queens that attack each other.
package nqueens
