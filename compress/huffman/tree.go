// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Node is a node of a Huffman prefix-code tree. A node is either a leaf,
// carrying one of the 256 byte values, or an internal node owning exactly
// two children. Leaves have nil Left and Right. Trees are built once and
// never mutated afterwards.
type Node struct {
	Left, Right *Node

	// Symbol is the byte value held by a leaf. Meaningless on internal nodes.
	Symbol byte

	// Weight is the aggregate occurrence count of all symbols beneath this
	// node. It drives the greedy merge during construction and is not part
	// of the tree's identity: Equal ignores it, and trees rebuilt from a
	// serialized descriptor carry zero weights.
	Weight int
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Equal reports whether two trees have the same shape and the same leaf
// symbols. Weights are construction-time bookkeeping and are excluded.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Leaf() || o.Leaf() {
		return n.Leaf() && o.Leaf() && n.Symbol == o.Symbol
	}
	return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// A lone leaf has depth 1.
func (n *Node) Depth() int {
	if n.Leaf() {
		return 1
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}

// BuildTree counts the occurrences of each byte value in symbols and builds
// the Huffman tree for that frequency table.
//
// The construction is the classic greedy merge: seed one leaf per occurring
// byte value in ascending value order, then repeatedly re-sort the working
// set by descending weight (stable, so equal weights keep their relative
// order), remove the two lightest entries from the tail, and append their
// merge. The lightest of the two becomes the left child. The tie-break
// behavior is observable in the output bit layout and must not change.
//
// BuildTree returns ErrEmptyInput if symbols is empty and ErrSingleSymbol
// if it contains only one distinct byte value; neither case has a
// representation in the wire format.
func BuildTree(symbols []byte) (*Node, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	var freq [256]int
	present := bitset.New(256)
	for _, b := range symbols {
		freq[b]++
		present.Set(uint(b))
	}
	if present.Count() < 2 {
		return nil, ErrSingleSymbol
	}

	work := make([]*Node, 0, present.Count())
	for i, ok := present.NextSet(0); ok; i, ok = present.NextSet(i + 1) {
		work = append(work, &Node{Symbol: byte(i), Weight: freq[i]})
	}

	for len(work) > 1 {
		sort.SliceStable(work, func(i, j int) bool {
			return work[i].Weight > work[j].Weight
		})
		a := work[len(work)-1]
		b := work[len(work)-2]
		work = work[:len(work)-2]
		work = append(work, &Node{Left: a, Right: b, Weight: a.Weight + b.Weight})
	}
	return work[0], nil
}
