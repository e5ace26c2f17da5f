// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// A code is the bit path from the root to a leaf: false for the left
// child, true for the right. Codes derived from the same tree form a
// prefix-free set by construction.

// codePoint is one serialized tree entry: the bit length of a leaf's code
// and the symbol it encodes. A tree descriptor is the codePoint list in
// depth-first left-before-right leaf order, which is exactly the order the
// reconstruction in reader.go consumes.
type codePoint struct {
	length byte
	symbol byte
}

// Codes derives the code of every symbol present in the tree in a single
// depth-first traversal. The returned slice is indexed by byte value;
// absent symbols have a nil entry.
func (n *Node) Codes() [][]bool {
	codes := make([][]bool, 256)
	n.walk(nil, func(path []bool, sym byte) {
		codes[sym] = append([]bool(nil), path...)
	})
	return codes
}

// Code looks up the code of a single symbol by walking the tree, returning
// the first matching path. The second return value is false if the symbol
// has no leaf in the tree.
func (n *Node) Code(sym byte) ([]bool, bool) {
	if n.Leaf() {
		if n.Symbol == sym {
			return []bool{}, true
		}
		return nil, false
	}
	if path, ok := n.Left.Code(sym); ok {
		return append([]bool{false}, path...), true
	}
	if path, ok := n.Right.Code(sym); ok {
		return append([]bool{true}, path...), true
	}
	return nil, false
}

// codePoints lists the tree's leaves as (code length, symbol) pairs in
// depth-first left-before-right order. The code length of a leaf is its
// depth, which for any valid tree is at least 1 and at most 255.
func (n *Node) codePoints() []codePoint {
	points := make([]codePoint, 0, 256)
	n.walk(nil, func(path []bool, sym byte) {
		points = append(points, codePoint{length: byte(len(path)), symbol: sym})
	})
	return points
}

// walk visits every leaf in depth-first left-before-right order, calling
// visit with the root-to-leaf path. The path slice is reused between
// calls; visitors must copy it if they keep it.
func (n *Node) walk(path []bool, visit func(path []bool, sym byte)) {
	if n.Leaf() {
		visit(path, n.Symbol)
		return
	}
	n.Left.walk(append(path, false), visit)
	n.Right.walk(append(path, true), visit)
}
