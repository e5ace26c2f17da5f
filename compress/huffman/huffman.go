// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a byte-oriented Huffman compressor and
// decompressor with a self-describing wire format: a serialized
// prefix-code tree followed by the bit-packed payload, most significant
// bit first throughout.
//
// Encode and Decode reproduce the classic sentinel framing: a zero byte
// appended to the payload marks its end, and decoding stops at the first
// decoded zero symbol. That convention cannot represent payloads that
// themselves contain zero bytes; EncodeFramed and DecodeFramed replace the
// sentinel with an explicit symbol count and round-trip arbitrary
// payloads.
//
// The codec is purely synchronous and keeps no state between calls;
// concurrent calls on independent inputs are safe.
package huffman

import "errors"

var (
	// ErrEmptyInput is returned when a tree is requested over no symbols.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrSingleSymbol is returned when the input holds only one distinct
	// byte value; a one-leaf tree would assign it a zero-length code.
	ErrSingleSymbol = errors.New("huffman: input has a single distinct symbol")
	// ErrCorrupt is returned by the decoder for any malformed stream:
	// a truncated tree descriptor, descriptor entries that do not describe
	// a complete tree, or payload bits that run off the bit sequence.
	ErrCorrupt = errors.New("huffman: corrupt stream")
)

// eom is the conventional end-of-message sentinel of Encode and Decode.
// The serializer itself has no notion of it and will happily encode a
// zero byte anywhere in a payload.
const eom byte = 0

// Encode compresses data into the sentinel-framed wire format: it appends
// the zero end marker, builds the Huffman tree over the result, and
// serializes the tree descriptor followed by the encoded payload.
//
// Empty input fails with ErrSingleSymbol (the appended sentinel is then
// the only distinct symbol). A payload containing zero bytes encodes
// fine but decodes truncated at the first zero; use EncodeFramed for such
// data.
func Encode(data []byte) ([]byte, error) {
	buf := make([]byte, len(data)+1)
	copy(buf, data)
	buf[len(data)] = eom

	tree, err := BuildTree(buf)
	if err != nil {
		return nil, err
	}
	return tree.Serialize(buf)
}

// Decode reverses Encode: it reconstructs the tree from the descriptor and
// decodes payload symbols until the zero sentinel, which is excluded from
// the result.
func Decode(packed []byte) ([]byte, error) {
	_, data, err := Deserialize(packed)
	return data, err
}

// EncodeFramed compresses data with an explicit length frame instead of
// the sentinel: a 32-bit big-endian symbol count precedes the tree
// descriptor, and no end marker is appended. Unlike Encode it
// round-trips payloads containing zero bytes.
func EncodeFramed(data []byte) ([]byte, error) {
	tree, err := BuildTree(data)
	if err != nil {
		return nil, err
	}
	return tree.serializeFramed(data)
}

// DecodeFramed reverses EncodeFramed, decoding exactly the framed symbol
// count with no end-of-stream heuristic.
func DecodeFramed(packed []byte) ([]byte, error) {
	_, data, err := deserializeFramed(packed)
	return data, err
}
