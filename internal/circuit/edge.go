package circuit

import (
	"sort"
	"sync"
)

// edge is a candidate connection between the boxes at indices a and b, a < b.
// Edges are transient: generated once per solve, sorted, walked, discarded.
type edge struct {
	dist2 int64
	a, b  int
}

// candidateEdges returns all C(n,2) unordered pairs sorted ascending by
// squared distance, ties broken by (a, b) so the ordering is deterministic.
// workers controls how many goroutines fill the pair list; <= 1 runs
// single-threaded. The sort itself is sequential.
func candidateEdges(points []Point, workers int) []edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	edges := make([]edge, n*(n-1)/2)
	if workers <= 1 {
		fillEdges(points, edges, 0, n)
	} else {
		fillEdgesParallel(points, edges, workers)
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].dist2 != edges[j].dist2 {
			return edges[i].dist2 < edges[j].dist2
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})
	return edges
}

// rowOffset returns the index of pair (i, i+1) in the flattened pair list:
// the rows before i contribute (n-1) + (n-2) + ... + (n-i) pairs.
func rowOffset(n, i int) int {
	return i*(n-1) - i*(i-1)/2
}

// fillEdges writes the pairs for source rows [start, end) into their
// flattened positions. Row ranges don't overlap, so parallel callers need
// no synchronization.
func fillEdges(points []Point, edges []edge, start, end int) {
	n := len(points)
	for i := start; i < end; i++ {
		k := rowOffset(n, i)
		for j := i + 1; j < n; j++ {
			edges[k] = edge{dist2: points[i].Dist2(points[j]), a: i, b: j}
			k++
		}
	}
}

// fillEdgesParallel splits the source rows across workers. Each worker owns a
// contiguous row range and writes to a disjoint region of the edge slice.
func fillEdgesParallel(points []Point, edges []edge, workers int) {
	n := len(points)
	rowsPerWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fillEdges(points, edges, start, end)
		}(start, end)
	}
	wg.Wait()
}
