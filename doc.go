// Package huff provides lossless compression of byte streams via static
// Huffman coding with an embedded code tree.
//
// # Overview
//
// The codec works over the 256 byte values plus one synthetic end-of-stream
// symbol. Compression is two-pass: a first pass over the input gathers byte
// frequencies, a prefix-code tree is built from them, and a second pass
// replaces each byte with its variable-length code. The tree itself travels
// in the output, so a compressed stream is fully self-describing and carries
// no separate dictionary, length field, or checksum.
//
// # When to Use
//
// Static Huffman coding suits:
//   - Inputs with a skewed byte distribution: text, logs, source code
//   - One-shot archival where the whole input is available up front
//   - Situations that need a tiny, dependency-light, auditable format
//
// It is not a general-purpose archiver: there is no modeling of repeats
// (use LZ-family codecs for that), the tree is fixed for the whole stream
// rather than adapted as bytes arrive, and the input must be read twice,
// so sources have to be rewindable.
//
// # Format
//
// A compressed stream is bit-packed, most-significant bit first:
//
//	32 bits   magic constant identifying a tree-carrying Huffman payload
//	variable  the tree in pre-order: 0 = internal node, 1 + 9-bit symbol = leaf
//	variable  one code per input byte, terminated by the end-of-stream code
//
// The final byte is zero-padded; decoding stops at the end-of-stream code,
// so the padding (and any trailing bytes) is never interpreted.
//
// # Basic Usage
//
//	comp := huff.CompressBytes([]byte("hello hello hello"))
//
//	orig, err := huff.DecompressBytes(comp)
//	if err != nil {
//		// corrupted or truncated input
//	}
//
//	// Or stream to/from arbitrary readers and writers. The source must
//	// be seekable because compression reads it twice.
//	f, _ := os.Open("input.txt")
//	err = huff.Compress(&out, f)
//
// # Error Handling
//
// Decompression validates the stream as it goes and fails fast with one of
// the package sentinel errors (ErrHeader, ErrTruncatedTree,
// ErrTruncatedPayload, ErrMalformedTree), matchable with errors.Is. A failed
// call may have produced partial output; it must be discarded.
//
// # Performance Characteristics
//
// Compression is O(n) over the input plus O(k log k) tree construction for
// k distinct byte values (k ≤ 257). Decompression is O(m) in the output,
// one tree edge per payload bit. The tree, frequency table, and code table
// are built per call and discarded; steady-state allocation is the handful
// of nodes (≤ 513) plus stream buffers.
package huff
