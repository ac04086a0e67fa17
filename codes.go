package huff

import "github.com/icza/huffman"

// code is one symbol's bit sequence: the path from the root to its leaf,
// left = 0, right = 1, packed into bits with the root step in the most
// significant of the low len bits. A leaf at the root gets the zero-length
// code. Packing caps codes at 64 bits; with a 257-symbol alphabet a longer
// code needs petabyte-scale input with a near-Fibonacci frequency skew.
type code struct {
	bits uint64
	len  uint8
}

// codeTable maps leaf symbols to their codes, indexed by symbol value.
// Symbols absent from the tree have no entry.
type codeTable struct {
	codes [maxSymbols]code
	valid [maxSymbols]bool
}

func (t *codeTable) lookup(v huffman.ValueType) (code, bool) {
	if v < 0 || v >= maxSymbols {
		return code{}, false
	}
	return t.codes[v], t.valid[v]
}

// buildCodes walks the tree depth-first and records the root path of every
// leaf. The walk is iterative with an explicit frame stack, so tree depth
// never reaches the call stack. Deterministic for a fixed tree shape.
func buildCodes(root *huffman.Node) *codeTable {
	t := new(codeTable)
	type frame struct {
		node *huffman.Node
		c    code
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isLeaf(f.node) {
			t.codes[f.node.Value] = f.c
			t.valid[f.node.Value] = true
			continue
		}
		stack = append(stack,
			frame{node: f.node.Right, c: code{bits: f.c.bits<<1 | 1, len: f.c.len + 1}},
			frame{node: f.node.Left, c: code{bits: f.c.bits << 1, len: f.c.len + 1}},
		)
	}
	return t
}
