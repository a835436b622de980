package circuit

import "testing"

func TestNewUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	// Each element should be its own root.
	for i := 0; i < 5; i++ {
		if root := uf.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
	}

	// Each element starts as a circuit of size 1.
	for i := 0; i < 5; i++ {
		if got := uf.ComponentSize(i); got != 1 {
			t.Errorf("ComponentSize(%d) = %d, want 1", i, got)
		}
	}
}

func TestNewUnionFind_NegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewUnionFind(-1) did not panic")
		}
	}()
	NewUnionFind(-1)
}

func TestUnionFind_UnionTwoElements(t *testing.T) {
	uf := NewUnionFind(5)

	if !uf.Union(1, 3) {
		t.Fatal("Union(1,3) = false, want true for first merge")
	}
	if uf.Find(1) != uf.Find(3) {
		t.Error("after Union(1,3), Find(1) != Find(3)")
	}
	if got := uf.ComponentSize(uf.Find(1)); got != 2 {
		t.Errorf("size of merged circuit = %d, want 2", got)
	}
}

func TestUnionFind_RepeatUnionReturnsFalse(t *testing.T) {
	uf := NewUnionFind(4)

	if !uf.Union(0, 1) {
		t.Fatal("first Union(0,1) = false, want true")
	}
	before := uf.ComponentSize(uf.Find(0))

	// The second call must report "already connected" and change nothing.
	if uf.Union(0, 1) {
		t.Error("second Union(0,1) = true, want false")
	}
	if after := uf.ComponentSize(uf.Find(0)); after != before {
		t.Errorf("repeat union changed size from %d to %d", before, after)
	}
}

func TestUnionFind_MultipleUnions(t *testing.T) {
	uf := NewUnionFind(6)

	// Union {0,1,2} and {3,4,5}.
	uf.Union(0, 1)
	uf.Union(1, 2)
	uf.Union(3, 4)
	uf.Union(4, 5)

	if uf.Find(0) != uf.Find(2) {
		t.Error("0 and 2 should be in same circuit")
	}
	if uf.Find(3) != uf.Find(5) {
		t.Error("3 and 5 should be in same circuit")
	}
	if uf.Find(0) == uf.Find(3) {
		t.Error("0 and 3 should be in different circuits")
	}

	// Union the two circuits.
	if !uf.Union(2, 4) {
		t.Fatal("Union(2,4) = false, want true")
	}

	root := uf.Find(0)
	for i := 1; i < 6; i++ {
		if uf.Find(i) != root {
			t.Errorf("after full union, Find(%d) != Find(0)", i)
		}
	}
	if got := uf.ComponentSize(root); got != 6 {
		t.Errorf("size of root = %d, want 6", got)
	}
}

func TestUnionFind_FindIdempotent(t *testing.T) {
	uf := NewUnionFind(8)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 3)
	uf.Union(5, 6)

	for i := 0; i < 8; i++ {
		if uf.Find(uf.Find(i)) != uf.Find(i) {
			t.Errorf("Find(Find(%d)) != Find(%d)", i, i)
		}
	}
}

func TestUnionFind_PathCompression(t *testing.T) {
	uf := NewUnionFind(5)

	// Build a chain by always unioning through the current root.
	uf.Union(0, 1)
	uf.Union(uf.Find(0), 2)
	uf.Union(uf.Find(0), 3)
	uf.Union(uf.Find(0), 4)

	// Find(4) should compress the path: parent[4] points directly at root.
	root := uf.Find(4)
	if uf.parent[4] != root && uf.parent[4] != -1 {
		t.Errorf("after Find(4), parent[4] = %d, want root %d", uf.parent[4], root)
	}
}

func TestUnionFind_UnionBySize(t *testing.T) {
	uf := NewUnionFind(4)

	// Build {0,1,2}, size 3.
	uf.Union(0, 1)
	uf.Union(0, 2)
	bigRoot := uf.Find(0)

	// The singleton 3 attaches under the larger circuit's root.
	uf.Union(3, 0)
	if got := uf.Find(3); got != bigRoot {
		t.Errorf("expected union-by-size: small tree attaches to big root %d, got root %d", bigRoot, got)
	}
}

func TestUnionFind_UnionMonotonicity(t *testing.T) {
	uf := NewUnionFind(10)
	uf.Union(0, 1)
	uf.Union(1, 2) // {0,1,2} size 3
	uf.Union(4, 5) // {4,5} size 2

	sizeA := uf.ComponentSize(uf.Find(0))
	sizeB := uf.ComponentSize(uf.Find(4))

	if !uf.Union(0, 4) {
		t.Fatal("Union(0,4) = false, want true")
	}
	got := uf.ComponentSize(uf.Find(0))
	if got != sizeA+sizeB {
		t.Errorf("merged size = %d, want %d", got, sizeA+sizeB)
	}
	if got <= sizeA || got <= sizeB {
		t.Errorf("merged size %d did not grow past pre-union sizes %d, %d", got, sizeA, sizeB)
	}
}

func TestUnionFind_SizesSumToN(t *testing.T) {
	uf := NewUnionFind(7)
	unions := [][2]int{{0, 1}, {2, 3}, {1, 3}, {3, 2}, {5, 6}, {0, 0}}

	check := func() {
		total := 0
		for _, s := range uf.ComponentSizes() {
			total += s
		}
		if total != 7 {
			t.Errorf("component sizes sum to %d, want 7", total)
		}
	}

	check()
	for _, u := range unions {
		uf.Union(u[0], u[1])
		check()
	}
}

func TestUnionFind_ComponentSizeNonRootPanics(t *testing.T) {
	uf := NewUnionFind(3)
	uf.Union(0, 1)

	nonRoot := 0
	if uf.Find(0) == 0 {
		nonRoot = 1
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("ComponentSize(%d) on non-root did not panic", nonRoot)
		}
	}()
	uf.ComponentSize(nonRoot)
}
