package huff

import (
	"io"

	"github.com/icza/bitio"
)

// frequencies tallies how often each byte value occurs in the input. The
// end-of-stream symbol is not counted here; the tree builder seeds it with
// weight 1 unconditionally.
type frequencies [alphabetSize]int

// countWords reads fixed-width words from r until end of data and returns
// their occurrence counts. A word outside the byte alphabet is ErrAlphabet;
// it cannot occur at the current 8-bit word width, but the check keeps the
// width constant safe to widen.
func countWords(r *bitio.Reader) (*frequencies, error) {
	freq := new(frequencies)
	for {
		word, err := r.ReadBits(bitsPerWord)
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return nil, err
		}
		if word >= alphabetSize {
			return nil, ErrAlphabet
		}
		freq[word]++
	}
}
