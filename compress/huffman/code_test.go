// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	tree, err := BuildTree([]byte("aab\x00"))
	require.NoError(t, err)

	codes := tree.Codes()
	require.Equal(t, []bool{true}, codes['a'])
	require.Equal(t, []bool{false, false}, codes['b'])
	require.Equal(t, []bool{false, true}, codes[0])
	require.Nil(t, codes['z'])
}

func TestCodePointLookup(t *testing.T) {
	tree, err := BuildTree([]byte("aab\x00"))
	require.NoError(t, err)

	// point lookup by tree walk agrees with the cached derivation
	codes := tree.Codes()
	for sym := 0; sym < 256; sym++ {
		code, ok := tree.Code(byte(sym))
		if codes[sym] == nil {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.Equal(t, codes[sym], code)
	}
}

func TestCodePointsOrder(t *testing.T) {
	tree, err := BuildTree([]byte("aab\x00"))
	require.NoError(t, err)

	// depth-first left-before-right leaf order, length = leaf depth
	require.Equal(t, []codePoint{
		{length: 2, symbol: 'b'},
		{length: 2, symbol: 0},
		{length: 1, symbol: 'a'},
	}, tree.codePoints())
}

func TestCodesPrefixFree(t *testing.T) {
	inputs := [][]byte{
		[]byte("aab\x00"),
		[]byte("mississippi river\x00"),
		[]byte{1, 1, 1, 2, 2, 3, 250, 250, 250, 250, 0},
	}
	for _, input := range inputs {
		tree, err := BuildTree(input)
		require.NoError(t, err)
		requirePrefixFree(t, tree.Codes())
	}
}

func requirePrefixFree(t *testing.T, codes [][]bool) {
	t.Helper()
	for i, a := range codes {
		for j, b := range codes {
			if i == j || a == nil || b == nil {
				continue
			}
			require.False(t, isPrefix(a, b), "code of %d is a prefix of code of %d", i, j)
		}
	}
}

func isPrefix(a, b []bool) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
