package huff

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
	"github.com/icza/huffman"
)

// Core constants for the codec.
const (
	bitsPerWord  = 8                // input and output symbols are bytes
	bitsPerLeaf  = 9                // 9 bits hold every symbol 0..256 inclusive
	alphabetSize = 1 << bitsPerWord // 256

	// eos is the synthetic end-of-stream symbol. It is seeded into every
	// tree with weight 1, so even an empty input yields a decodable stream.
	eos huffman.ValueType = alphabetSize

	maxSymbols = alphabetSize + 1 // bytes plus eos

	// magic identifies a Huffman-coded payload with an embedded tree.
	magic     = 0xface8201
	magicBits = 32
)

// Sentinel errors reported by Compress and Decompress. All are fatal: the
// operation aborts at the point of detection and any partial output is
// invalid.
var (
	// ErrAlphabet indicates an input word outside 0..255 during counting
	// or encoding.
	ErrAlphabet = errors.New("huff: symbol outside byte alphabet")

	// ErrHeader indicates the stream does not start with the expected
	// 32-bit magic constant.
	ErrHeader = errors.New("huff: bad magic header")

	// ErrTruncatedTree indicates the stream ended inside the serialized
	// tree, where a structure bit or a leaf's symbol field was expected.
	ErrTruncatedTree = errors.New("huff: truncated tree header")

	// ErrTruncatedPayload indicates the stream ended before the
	// end-of-stream code was decoded.
	ErrTruncatedPayload = errors.New("huff: truncated payload")

	// ErrMalformedTree indicates a structurally invalid tree: a walk
	// stepped past a missing child, or a single-leaf tree whose lone
	// symbol is not end-of-stream.
	ErrMalformedTree = errors.New("huff: malformed tree")
)

// Compress encodes src into dst. It reads src twice, once to gather byte
// frequencies and once to emit codes, so src must be rewindable; it is left
// positioned at end of input. The output is self-describing: magic header,
// serialized tree, then the bit-packed payload terminated by the
// end-of-stream code.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	freq, err := countWords(bitio.NewReader(bufio.NewReader(src)))
	if err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	root := buildTree(freq)
	codes := buildCodes(root)

	w := bitio.NewWriter(dst)
	if err := w.WriteBits(magic, magicBits); err != nil {
		return err
	}
	if err := writeTree(w, root); err != nil {
		return err
	}
	if err := encodeWords(w, bitio.NewReader(bufio.NewReader(src)), codes); err != nil {
		return err
	}
	// Close pads the last byte with zero bits; the decoder stops at the
	// end-of-stream code and never looks at the padding.
	return w.Close()
}

// encodeWords re-reads the input word by word and appends each word's code
// to w, then the end-of-stream code exactly once.
func encodeWords(w *bitio.Writer, r *bitio.Reader, codes *codeTable) error {
	for {
		sym := eos
		word, err := r.ReadBits(bitsPerWord)
		switch err {
		case nil:
			sym = huffman.ValueType(word)
		case io.EOF:
			// fall through with sym == eos
		default:
			return err
		}
		c, ok := codes.lookup(sym)
		if !ok {
			// The table was built from the same input, so every word
			// seen here has a code unless the word width is widened.
			return ErrAlphabet
		}
		if c.len > 0 { // the degenerate single-leaf tree has a 0-bit code
			if err := w.WriteBits(c.bits, c.len); err != nil {
				return err
			}
		}
		if sym == eos {
			return nil
		}
	}
}

// CompressBytes is a convenience wrapper around Compress for in-memory
// data. It cannot fail: the source and sink are memory buffers and the byte
// alphabet is closed.
func CompressBytes(src []byte) []byte {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(src)); err != nil {
		panic("huff: compress to buffer: " + err.Error())
	}
	return buf.Bytes()
}

// Decompress decodes a stream produced by Compress from src into dst in a
// single pass. On any error the stream is invalid and output already
// written to dst must be discarded.
func Decompress(dst io.Writer, src io.Reader) error {
	r := bitio.NewReader(bufio.NewReader(src))
	if id, err := r.ReadBits(magicBits); err != nil || id != magic {
		return ErrHeader
	}
	root, err := readTree(r)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(dst)
	if isLeaf(root) {
		// A single-leaf tree only arises from empty input, where the
		// tree is the end-of-stream leaf alone. Anything else means the
		// header lied about its own structure.
		if root.Value != eos {
			return ErrMalformedTree
		}
		return out.Flush()
	}

	cur := root
	for {
		right, err := r.ReadBool()
		if err != nil {
			return ErrTruncatedPayload
		}
		if right {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
		if cur == nil {
			return ErrMalformedTree
		}
		if isLeaf(cur) {
			if cur.Value == eos {
				return out.Flush()
			}
			if err := out.WriteByte(byte(cur.Value)); err != nil {
				return err
			}
			cur = root
		}
	}
}

// DecompressBytes is a convenience wrapper around Decompress for in-memory
// data.
func DecompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
