package circuit

import (
	"runtime"
	"sort"
)

// Config controls the greedy connector. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// Workers controls the number of goroutines used to generate candidate
	// edges. 0 means use runtime.NumCPU(). The sort and the union walk are
	// sequential regardless.
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{}
}

func (cfg *Config) applyDefaults() {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Connection records a successful link between the boxes at indices A and B.
type Connection struct {
	A, B int
}

// ConnectClosest walks the candidate pairs in ascending distance order and
// connects them until budget successful connections have been made (Mode A),
// then returns the multiset of circuit sizes. Pairs whose boxes are already
// in the same circuit are skipped and do not count against the budget.
// Exhausting the pair list before the budget is reached is a valid outcome.
func ConnectClosest(points []Point, budget int, cfg Config) []int {
	cfg.applyDefaults()

	uf := NewUnionFind(len(points))
	connected := 0
	for _, e := range candidateEdges(points, cfg.Workers) {
		if connected >= budget {
			break
		}
		if uf.Union(e.a, e.b) {
			connected++
		}
	}
	return uf.ComponentSizes()
}

// Unify walks the candidate pairs in ascending distance order until every box
// is in a single circuit, which takes exactly n-1 successful connections
// (Mode B). It returns the connection that completed the merge. ok is false
// when fewer than two boxes exist and no connection can be made.
func Unify(points []Point, cfg Config) (last Connection, ok bool) {
	cfg.applyDefaults()

	n := len(points)
	if n < 2 {
		return Connection{}, false
	}

	uf := NewUnionFind(n)
	connected := 0
	for _, e := range candidateEdges(points, cfg.Workers) {
		if !uf.Union(e.a, e.b) {
			continue
		}
		connected++
		last = Connection{A: e.a, B: e.b}
		if connected == n-1 {
			return last, true
		}
	}
	// Unreachable for n >= 2: any two circuits always have a candidate pair
	// between them, so the walk reaches n-1 connections before exhausting.
	return last, connected > 0
}

// ProductOfLargest multiplies the k largest values in sizes. When fewer than
// k values exist it multiplies all of them, which matches padding the list
// with size-1 circuits. sizes is not modified.
func ProductOfLargest(sizes []int, k int) int {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if k > len(sorted) {
		k = len(sorted)
	}
	product := 1
	for _, s := range sorted[:k] {
		product *= s
	}
	return product
}
