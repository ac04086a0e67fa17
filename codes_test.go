package huff

import (
	"math/rand"
	"testing"

	"github.com/icza/huffman"
)

func TestCodesPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 32<<10)
	for i := range input {
		// Skewed distribution so code lengths vary.
		input[i] = byte(rng.Intn(256)) & byte(rng.Intn(256))
	}
	codes := buildCodes(buildTree(freqOf(input)))

	type entry struct {
		sym int
		c   code
	}
	var all []entry
	for v := 0; v < maxSymbols; v++ {
		if codes.valid[v] {
			all = append(all, entry{v, codes.codes[v]})
		}
	}
	for i, a := range all {
		for j, b := range all {
			if i == j || a.c.len > b.c.len {
				continue
			}
			if b.c.bits>>(b.c.len-a.c.len) == a.c.bits {
				t.Fatalf("code of %d (%0*b) is a prefix of code of %d (%0*b)",
					a.sym, int(a.c.len), a.c.bits, b.sym, int(b.c.len), b.c.bits)
			}
		}
	}
}

func TestCodeLengthMatchesDepth(t *testing.T) {
	root := buildTree(freqOf([]byte("sells seashells by the seashore")))
	codes := buildCodes(root)

	var walk func(n *huffman.Node, depth uint8)
	walk = func(n *huffman.Node, depth uint8) {
		if isLeaf(n) {
			c, ok := codes.lookup(n.Value)
			if !ok {
				t.Fatalf("leaf %d missing from code table", n.Value)
			}
			if c.len != depth {
				t.Fatalf("leaf %d: code length %d, tree depth %d", n.Value, c.len, depth)
			}
			return
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(root, 0)
}

func TestCodesDegenerate(t *testing.T) {
	// The lone end-of-stream leaf sits at the root and gets the empty code.
	codes := buildCodes(buildTree(new(frequencies)))
	c, ok := codes.lookup(eos)
	if !ok {
		t.Fatalf("end-of-stream symbol missing from code table")
	}
	if c.len != 0 {
		t.Fatalf("lone leaf code length: got %d, want 0", c.len)
	}
	for v := 0; v < alphabetSize; v++ {
		if codes.valid[v] {
			t.Fatalf("symbol %d has a code but never occurred", v)
		}
	}
}

func TestCodesTwoLeaves(t *testing.T) {
	codes := buildCodes(buildTree(freqOf([]byte("AAAAA"))))
	a, okA := codes.lookup(65)
	e, okE := codes.lookup(eos)
	if !okA || !okE {
		t.Fatalf("expected codes for both leaves")
	}
	if a.len != 1 || e.len != 1 {
		t.Fatalf("two-leaf tree codes must be 1 bit: got %d and %d", a.len, e.len)
	}
	if a.bits == e.bits {
		t.Fatalf("sibling leaves share the code %b", a.bits)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	codes := buildCodes(buildTree(freqOf([]byte("x"))))
	if _, ok := codes.lookup(-1); ok {
		t.Fatalf("negative symbol must not resolve")
	}
	if _, ok := codes.lookup(maxSymbols); ok {
		t.Fatalf("symbol beyond the alphabet must not resolve")
	}
}
