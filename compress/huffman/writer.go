// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"errors"
	"math"

	"github.com/icza/bitio"
)

var (
	errNoCode   = errors.New("huffman: symbol has no code in tree")
	errTooLarge = errors.New("huffman: payload exceeds frame capacity")
)

// Serialize packs the tree descriptor and the encoded payload into a
// single byte sequence.
//
// The descriptor is one (code length, symbol) pair per leaf, 8 bits each,
// in depth-first left-before-right leaf order, terminated by an all-zero
// 8-bit field. The terminator is unambiguous because a valid tree has at
// least two leaves, so every real code length is at least 1. The payload
// is the concatenation of each symbol's code in input order. Bits are
// packed most significant first; the final byte is padded with zero
// low-order bits.
//
// Serialize has no notion of an end of payload. Callers that need one
// either append the zero sentinel (see Encode) or use the framed variant.
func (n *Node) Serialize(symbols []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := n.writeTo(w, symbols); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// serializeFramed is Serialize preceded by a 32-bit big-endian symbol
// count, the framing used by EncodeFramed.
func (n *Node) serializeFramed(symbols []byte) ([]byte, error) {
	if uint64(len(symbols)) > math.MaxUint32 {
		return nil, errTooLarge
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWriteBits(uint64(len(symbols)), 32)
	if err := n.writeTo(w, symbols); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeTo(w *bitio.Writer, symbols []byte) error {
	for _, p := range n.codePoints() {
		w.TryWriteByte(p.length)
		w.TryWriteByte(p.symbol)
	}
	w.TryWriteByte(0)

	codes := n.Codes()
	for _, sym := range symbols {
		code := codes[sym]
		if code == nil {
			return errNoCode
		}
		for _, bit := range code {
			w.TryWriteBool(bit)
		}
	}
	return w.TryError
}
