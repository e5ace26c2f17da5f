package huffgo

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	data := []byte("huffgo round trip through the root package")
	packed, err := Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(packed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestFramedRoundTrip(t *testing.T) {
	data := []byte{0, 1, 2, 0, 3}
	packed, err := EncodeFramed(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeFramed(packed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %v, want %v", got, data)
	}
}
