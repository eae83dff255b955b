package huffman

import (
	"container/heap"
	"sort"
)

// A node is one node of the prefix-code tree. A branch owns exactly two
// children and has value -1. A leaf has nil children and carries the byte
// value it represents, or -1 for the placeholder leaf injected into
// single-byte alphabets.
type node struct {
	count uint64
	value int
	left  *node
	right *node
}

func (n *node) leaf() bool { return n.left == nil }

// A mergeItem queues a node for merging. seq is the insertion sequence
// number that decides between equal counts.
type mergeItem struct {
	node *node
	seq  int
}

// A mergeQueue is a min-heap of queued nodes ordered by (count, seq).
type mergeQueue []mergeItem

func (q mergeQueue) Len() int { return len(q) }

func (q mergeQueue) Less(i, j int) bool {
	if q[i].node.count != q[j].node.count {
		return q[i].node.count < q[j].node.count
	}
	return q[i].seq < q[j].seq
}

func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *mergeQueue) Push(x any) { *q = append(*q, x.(mergeItem)) }

func (q *mergeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// buildTree builds the prefix-code tree for h and returns its root, or nil
// for an empty histogram.
//
// Leaves enter the merge queue in ascending count order, with the histogram's
// first-seen order deciding equal counts. Every merge pops the two smallest
// queued nodes, the first popped becoming the left child, and queues the new
// branch behind all equal-count nodes. Equal counts are always won by the
// earliest queued node, so code assignment is deterministic for a given
// histogram.
func buildTree(h *Histogram) *node {
	entries := h.Entries()
	if len(entries) == 0 {
		return nil
	}

	leaves := make([]*node, 0, len(entries)+1)
	for _, e := range entries {
		leaves = append(leaves, &node{count: e.Count, value: int(e.Value)})
	}
	// A single-byte alphabet gets a zero-weight placeholder leaf, so that the
	// tree always has a branch and the real byte a code of length one.
	if len(leaves) == 1 {
		leaves = append(leaves, &node{count: 0, value: -1})
	}
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].count < leaves[j].count })

	q := make(mergeQueue, len(leaves))
	for i, n := range leaves {
		q[i] = mergeItem{node: n, seq: i}
	}
	heap.Init(&q)

	seq := len(leaves)
	for q.Len() > 1 {
		left := heap.Pop(&q).(mergeItem)
		right := heap.Pop(&q).(mergeItem)
		branch := &node{
			count: left.node.count + right.node.count,
			value: -1,
			left:  left.node,
			right: right.node,
		}
		heap.Push(&q, mergeItem{node: branch, seq: seq})
		seq++
	}
	return q[0].node
}
