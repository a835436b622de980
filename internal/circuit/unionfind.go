package circuit

import "fmt"

// UnionFind is a disjoint-set registry with path compression and union by
// size. It tracks which junction boxes belong to the same circuit. All
// structural changes go through Union; there is no other mutation path.
type UnionFind struct {
	parent []int // -1 means "is a root"
	size   []int // valid only at root indices
}

// NewUnionFind creates a registry of n singleton circuits, indices 0..n-1.
// Panics if n is negative; indices outside [0, n) passed to any method are
// programmer errors and panic via bounds checks.
func NewUnionFind(n int) *UnionFind {
	if n < 0 {
		panic(fmt.Sprintf("circuit: NewUnionFind with negative size %d", n))
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size}
}

// Find returns the root of the circuit containing x, with path compression.
// Compression rewrites parent links but never changes the root Find reports.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Point all nodes along the path directly at the root.
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the circuits containing x and y by attaching the smaller tree
// under the larger. It returns true only when a real merge happened; false
// means x and y were already in the same circuit and nothing changed. Callers
// counting connections must use this return value, not the call count.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	// Attach smaller to larger.
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return true
}

// ComponentSize returns the number of boxes in the circuit rooted at root.
// Panics if root is not a root; callers must Find first.
func (uf *UnionFind) ComponentSize(root int) int {
	if uf.parent[root] != -1 {
		panic(fmt.Sprintf("circuit: ComponentSize of non-root %d", root))
	}
	return uf.size[root]
}

// ComponentSizes returns the size of every circuit, one entry per root.
// The sum of the returned values always equals the registry's element count.
func (uf *UnionFind) ComponentSizes() []int {
	var sizes []int
	for i, p := range uf.parent {
		if p == -1 {
			sizes = append(sizes, uf.size[i])
		}
	}
	return sizes
}

// Len returns the number of elements the registry was created with.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
