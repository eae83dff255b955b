package huffman

// A CodeTable maps byte values to prefix-free bitstrings of '0' and '1'
// characters. Byte values absent from the source histogram have no code.
type CodeTable struct {
	codes [256]string
}

// Code returns the bitstring for b, or "" if b has no code.
func (t *CodeTable) Code(b byte) string { return t.codes[b] }

// Len returns the number of byte values that have a code.
func (t *CodeTable) Len() int {
	n := 0
	for _, code := range t.codes {
		if code != "" {
			n++
		}
	}
	return n
}

// NewCodeTable derives the code table for h. Every distinct byte of h gets
// exactly one code; an empty histogram yields an empty table.
func NewCodeTable(h *Histogram) *CodeTable {
	return newCodeTable(buildTree(h))
}

// newCodeTable walks the tree depth-first with an explicit stack, assigning
// '0' on every left descent and '1' on every right descent. The placeholder
// leaf is skipped.
func newCodeTable(root *node) *CodeTable {
	t := &CodeTable{}
	if root == nil {
		return t
	}
	type frame struct {
		n    *node
		code string
	}
	stack := []frame{{n: root, code: ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.leaf() {
			if f.n.value >= 0 {
				t.codes[f.n.value] = f.code
			}
			continue
		}
		stack = append(stack, frame{n: f.n.left, code: f.code + "0"})
		stack = append(stack, frame{n: f.n.right, code: f.code + "1"})
	}
	return t
}
