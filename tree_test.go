package huffman

import (
	"testing"
)

func TestBuildTree(t *testing.T) {
	h := &Histogram{}
	h.add(65, 5)
	h.add(66, 2)
	h.add(67, 1)

	root := buildTree(h)
	if root == nil || root.leaf() {
		t.Fatalf("%+v", root)
	}
	if root.count != 8 {
		t.Fatalf("%d", root.count)
	}
	// 66 and 67 merge first, and their branch outranks the heavier 65.
	if !root.right.leaf() || root.right.value != 65 {
		t.Fatalf("%+v", root.right)
	}
	left := root.left
	if left.leaf() || left.count != 3 {
		t.Fatalf("%+v", left)
	}
	if left.left.value != 67 || left.right.value != 66 {
		t.Fatalf("%+v %+v", left.left, left.right)
	}
}

// TestBuildTreeTieBreak checks that equal counts are merged in first-seen
// order and that a merged branch ranks behind the equal-count leaves it has
// not absorbed yet.
func TestBuildTreeTieBreak(t *testing.T) {
	h := &Histogram{}
	for _, b := range []byte{1, 2, 3, 4} {
		h.add(b, 1)
	}

	table := NewCodeTable(h)
	want := map[byte]string{1: "00", 2: "01", 3: "10", 4: "11"}
	for b, code := range want {
		if got := table.Code(b); got != code {
			t.Errorf("%d: %q != %q", b, got, code)
		}
	}
}

func TestBuildTreeSingleByte(t *testing.T) {
	h := &Histogram{}
	h.add(42, 7)

	root := buildTree(h)
	if root == nil || root.leaf() || root.count != 7 {
		t.Fatalf("%+v", root)
	}
	if !root.left.leaf() || root.left.value != -1 || root.left.count != 0 {
		t.Fatalf("%+v", root.left)
	}
	if !root.right.leaf() || root.right.value != 42 {
		t.Fatalf("%+v", root.right)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if root := buildTree(&Histogram{}); root != nil {
		t.Fatalf("%+v", root)
	}
}

// TestBuildTreeWeights checks that every branch weighs the sum of its
// children and that each histogram key sits in exactly one leaf.
func TestBuildTreeWeights(t *testing.T) {
	h := &Histogram{}
	for i, n := range []uint64{13, 1, 1, 2, 3, 5, 8} {
		h.add(byte(i), n)
	}

	seen := make(map[int]int)
	var walk func(n *node) uint64
	walk = func(n *node) uint64 {
		if n.leaf() {
			if n.value >= 0 {
				seen[n.value]++
			}
			return n.count
		}
		sum := walk(n.left) + walk(n.right)
		if sum != n.count {
			t.Fatalf("%d != %d", n.count, sum)
		}
		return sum
	}
	if total := walk(buildTree(h)); total != h.Total() {
		t.Fatalf("%d != %d", total, h.Total())
	}
	for i := 0; i < 7; i++ {
		if seen[i] != 1 {
			t.Errorf("%d: %d", i, seen[i])
		}
	}
}
