// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffgo provides byte-oriented Huffman compression with a
// self-describing wire format: every compressed stream embeds the
// serialized prefix-code tree it was encoded with, so decompression needs
// no out-of-band state. The codec lives in compress/huffman; this package
// re-exports the whole-buffer entry points.
package huffgo

import "github.com/bitpack/huffgo/compress/huffman"

// Encode compresses data using the classic zero-sentinel framing. Data
// containing zero bytes decodes truncated at the first zero; use
// EncodeFramed for arbitrary binary payloads.
func Encode(data []byte) ([]byte, error) {
	return huffman.Encode(data)
}

// Decode reverses Encode.
func Decode(packed []byte) ([]byte, error) {
	return huffman.Decode(packed)
}

// EncodeFramed compresses data with an explicit symbol-count frame,
// round-tripping payloads that contain zero bytes.
func EncodeFramed(data []byte) ([]byte, error) {
	return huffman.EncodeFramed(data)
}

// DecodeFramed reverses EncodeFramed.
func DecodeFramed(packed []byte) ([]byte, error) {
	return huffman.DecodeFramed(packed)
}
