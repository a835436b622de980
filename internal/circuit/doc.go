// Package circuit implements the Day 8 junction-box clustering engine.
//
// Junction boxes are points in 3-D space. The engine enumerates every
// unordered pair, orders the pairs by ascending Euclidean distance, and
// connects them greedily through a disjoint-set registry. Two query modes
// share the pipeline:
//
//	sizes := circuit.ConnectClosest(points, 1000, circuit.DefaultConfig())
//	// sizes is the multiset of circuit sizes after 1000 successful
//	// connections (Mode A).
//
//	last, ok := circuit.Unify(points, circuit.DefaultConfig())
//	// last is the connection that merged the final two circuits into one
//	// (Mode B); ok is false when fewer than two boxes exist.
//
// The pipeline is O(n²) in memory and O(n² log n) in time. Puzzle inputs are
// bounded (low thousands of points), so this ceiling is accepted rather than
// worked around.
package circuit
