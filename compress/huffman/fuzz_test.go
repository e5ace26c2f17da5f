//go:build go1.18
// +build go1.18

package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("aab"))
	f.Add([]byte("the quick brown fox"))
	f.Add([]byte{1, 2, 3, 0, 4, 5})
	f.Fuzz(func(t *testing.T, source []byte) {
		packed, err := Encode(source)
		if err != nil {
			// empty or single-symbol inputs have no encoding
			if errors.Is(err, ErrSingleSymbol) || errors.Is(err, ErrEmptyInput) {
				return
			}
			t.Fatal(err)
		}
		decoded, err := Decode(packed)
		if err != nil {
			t.Fatal(err)
		}
		// a zero byte doubles as the end marker and truncates the decode
		want := source
		if i := bytes.IndexByte(source, 0); i >= 0 {
			want = source[:i]
		}
		if !bytes.Equal(decoded, want) {
			t.Fatalf("got %q, want %q", decoded, want)
		}
	})
}

func FuzzFramedRoundTrip(f *testing.F) {
	f.Add([]byte("aab"))
	f.Add([]byte{0, 1, 0, 2, 0, 3})
	f.Fuzz(func(t *testing.T, source []byte) {
		packed, err := EncodeFramed(source)
		if err != nil {
			return
		}
		decoded, err := DecodeFramed(packed)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(decoded, source) {
			t.Fatalf("got %q, want %q", decoded, source)
		}
	})
}

func FuzzDecode(f *testing.F) {
	if seed, err := Encode([]byte("seed corpus")); err == nil {
		f.Add(seed)
	}
	f.Add([]byte{0x05, 0xFF})
	f.Fuzz(func(t *testing.T, packed []byte) {
		// arbitrary input must either decode or fail with ErrCorrupt,
		// never panic or read out of bounds
		if _, err := Decode(packed); err != nil && !errors.Is(err, ErrCorrupt) {
			t.Fatal(err)
		}
		if _, err := DecodeFramed(packed); err != nil && !errors.Is(err, ErrCorrupt) {
			t.Fatal(err)
		}
	})
}
