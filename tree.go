package huff

import (
	"github.com/icza/bitio"
	"github.com/icza/huffman"
)

// isLeaf reports whether n is a leaf. Internal nodes always carry both
// children; a node with exactly one child is malformed.
func isLeaf(n *huffman.Node) bool {
	return n.Left == nil && n.Right == nil
}

// buildTree constructs the prefix-code tree for freq. One leaf is seeded
// per byte value with a non-zero count, in ascending value order, plus the
// end-of-stream leaf with weight 1. Seeding in a fixed order makes
// equal-weight merges inside huffman.Build reproducible, so compressing the
// same input twice yields identical bits. There is always at least the
// end-of-stream leaf, so the build cannot fail.
func buildTree(freq *frequencies) *huffman.Node {
	leaves := make([]*huffman.Node, 0, maxSymbols)
	for v, n := range freq {
		if n > 0 {
			leaves = append(leaves, &huffman.Node{Value: huffman.ValueType(v), Count: n})
		}
	}
	leaves = append(leaves, &huffman.Node{Value: eos, Count: 1})
	return huffman.Build(leaves)
}

// writeTree emits the pre-order encoding of the tree: a 0 bit for an
// internal node followed by both subtrees, a 1 bit and a 9-bit symbol for a
// leaf. The traversal is iterative with an explicit node stack.
func writeTree(w *bitio.Writer, root *huffman.Node) error {
	stack := []*huffman.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isLeaf(n) {
			if err := w.WriteBool(true); err != nil {
				return err
			}
			if err := w.WriteBits(uint64(n.Value), bitsPerLeaf); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteBool(false); err != nil {
			return err
		}
		// Right below left so the left subtree is emitted first.
		stack = append(stack, n.Right, n.Left)
	}
	return nil
}

// readTree rebuilds a tree from its pre-order encoding. End of data where a
// structure bit or a leaf's symbol field was expected is ErrTruncatedTree.
//
// The descent uses an explicit stack of unfilled child slots instead of
// recursion: a valid tree is at most 257 leaves deep, but a corrupted
// stream of 0 bits would otherwise drive call-stack depth proportional to
// the input length. Weights do not survive serialization; leaves come back
// with weight 1 and internal nodes with 0, which is fine because weights
// are never consulted after decoding.
func readTree(r *bitio.Reader) (*huffman.Node, error) {
	var root *huffman.Node
	slots := []**huffman.Node{&root}
	for len(slots) > 0 {
		slot := slots[len(slots)-1]
		slots = slots[:len(slots)-1]
		leaf, err := r.ReadBool()
		if err != nil {
			return nil, ErrTruncatedTree
		}
		if leaf {
			value, err := r.ReadBits(bitsPerLeaf)
			if err != nil {
				return nil, ErrTruncatedTree
			}
			*slot = &huffman.Node{Value: huffman.ValueType(value), Count: 1}
			continue
		}
		n := new(huffman.Node)
		*slot = n
		// Right pushed first so the left slot is filled next.
		slots = append(slots, &n.Right, &n.Left)
	}
	return root, nil
}
