package mnlz

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestAppendVarintKnownValues(t *testing.T) {
	cases := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{63, []byte{0x3F}},
		{64, []byte{0x40, 0x01}},
		{300, []byte{0x6C, 0x04}},
		{16383, []byte{0x7F, 0xFF}},
	}
	for _, tc := range cases {
		got, err := AppendVarint(nil, tc.value)
		if err != nil {
			t.Fatalf("%d: %v", tc.value, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%d: got %x want %x", tc.value, got, tc.want)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	// Values spanning 1, 2, 3 and 4 byte encodings, including the
	// boundaries where the extra byte count changes.
	values := []uint32{
		0, 1, 63,
		64, 1000, 16383,
		16384, 1 << 19, 1<<20 - 1,
		1 << 20, 1 << 24, MaxVarint,
	}
	for _, v := range values {
		enc, err := AppendVarint(nil, v)
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		got, err := ReadVarint(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d -> %d (bytes %x)", v, got, enc)
		}
	}
}

func TestAppendVarintPreservesPrefix(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	dst, err := AppendVarint(dst, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, []byte{0xAA, 0xBB, 0x40, 0x01}) {
		t.Fatalf("got %x", dst)
	}
}

func TestAppendVarintOutOfRange(t *testing.T) {
	_, err := AppendVarint(nil, MaxVarint+1)
	if !errors.Is(err, ErrVarintRange) {
		t.Fatalf("want ErrVarintRange, got %v", err)
	}
}

func TestReadVarintPropagatesEOF(t *testing.T) {
	if _, err := ReadVarint(bytes.NewReader(nil)); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF on empty input, got %v", err)
	}
	// First byte promises an extra byte that never arrives.
	if _, err := ReadVarint(bytes.NewReader([]byte{0x40})); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF on short input, got %v", err)
	}
}
