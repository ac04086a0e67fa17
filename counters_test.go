package huff

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

func TestCountWords(t *testing.T) {
	input := []byte("aab\x00\x00\x00\xff")
	freq, err := countWords(bitio.NewReader(bytes.NewReader(input)))
	if err != nil {
		t.Fatalf("countWords: %v", err)
	}
	want := map[byte]int{'a': 2, 'b': 1, 0x00: 3, 0xff: 1}
	for v := 0; v < alphabetSize; v++ {
		if freq[v] != want[byte(v)] {
			t.Fatalf("freq[%d]: got %d, want %d", v, freq[v], want[byte(v)])
		}
	}
}

func TestCountWordsEmpty(t *testing.T) {
	freq, err := countWords(bitio.NewReader(bytes.NewReader(nil)))
	if err != nil {
		t.Fatalf("countWords: %v", err)
	}
	for v, n := range freq {
		if n != 0 {
			t.Fatalf("freq[%d] = %d on empty input", v, n)
		}
	}
}
