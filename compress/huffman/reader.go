// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// maxTreeDepth bounds descriptor reconstruction. A tree over 256 symbols
// has at most 255 internal levels; anything deeper is a corrupt stream.
const maxTreeDepth = 255

// Deserialize parses a sentinel-framed stream produced by Serialize: it
// rebuilds the tree from the descriptor, then walks payload bits against
// it, one root-to-leaf walk per symbol. Decoding stops at the first
// decoded zero symbol, which is excluded from the result, or when fewer
// than 2 bits remain, whichever comes first. The trailing-bit stop keeps
// the walk out of the zero padding of the final byte; a stream without a
// zero sentinel may therefore decode trailing garbage from its padding.
//
// Any malformed input is reported as ErrCorrupt: a truncated descriptor,
// descriptor entries that do not assemble into a complete tree, or
// payload bits that run off the end of the stream mid-walk.
func Deserialize(packed []byte) (*Node, []byte, error) {
	r := bitio.NewCountReader(bytes.NewReader(packed))
	total := int64(len(packed)) * 8

	tree, err := readTree(r)
	if err != nil {
		return nil, nil, err
	}

	var out []byte
	for total-r.BitsCount >= 2 {
		sym, err := tree.decodeSymbol(r)
		if err != nil {
			return nil, nil, err
		}
		if sym == eom {
			break
		}
		out = append(out, sym)
	}
	return tree, out, nil
}

// deserializeFramed parses a stream produced by serializeFramed: a 32-bit
// symbol count, the tree descriptor, then exactly count symbols.
func deserializeFramed(packed []byte) (*Node, []byte, error) {
	r := bitio.NewCountReader(bytes.NewReader(packed))

	count, err := r.ReadBits(32)
	if err != nil {
		return nil, nil, ErrCorrupt
	}
	tree, err := readTree(r)
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, 0, min(count, 64<<10))
	for i := uint64(0); i < count; i++ {
		sym, err := tree.decodeSymbol(r)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, sym)
	}
	return tree, out, nil
}

// decodeSymbol walks the tree from the root, going left on a 0 bit and
// right on a 1 bit, until it reaches a leaf.
func (n *Node) decodeSymbol(r *bitio.CountReader) (byte, error) {
	node := n
	for !node.Leaf() {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, ErrCorrupt
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return node.Symbol, nil
}

// readTree reads the descriptor's codePoint list up to its all-zero
// terminator and rebuilds the tree from it.
func readTree(r *bitio.CountReader) (*Node, error) {
	points := make([]codePoint, 0, 16)
	for {
		length, err := r.ReadBits(8)
		if err != nil {
			return nil, ErrCorrupt
		}
		if length == 0 {
			break
		}
		sym, err := r.ReadBits(8)
		if err != nil {
			return nil, ErrCorrupt
		}
		if len(points) == 256 {
			return nil, ErrCorrupt
		}
		points = append(points, codePoint{length: byte(length), symbol: byte(sym)})
	}

	idx := 0
	root, err := treeAt(points, &idx, 0)
	if err != nil {
		return nil, err
	}
	if idx != len(points) {
		// leftover entries: the descriptor declared more leaves than the
		// depths can hold
		return nil, ErrCorrupt
	}
	return root, nil
}

// treeAt inverts the depth-first descriptor emission. It consumes the
// codePoint list strictly in order through a shared cursor: a leaf when
// the next entry's length equals the current depth, otherwise an internal
// node whose children are built at depth+1, left before right.
func treeAt(points []codePoint, idx *int, depth int) (*Node, error) {
	if *idx >= len(points) || depth > maxTreeDepth {
		return nil, ErrCorrupt
	}
	if int(points[*idx].length) == depth {
		n := &Node{Symbol: points[*idx].symbol}
		*idx++
		return n, nil
	}
	left, err := treeAt(points, idx, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := treeAt(points, idx, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
