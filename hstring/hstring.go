// Package hstring implements the tagged string representation used by
// every similarity measure: a buffer of bytes, bits, or hashed tokens,
// plus the preprocessing pipeline that turns raw input into that form.
package hstring

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Granularity is the unit at which a string is compared.
type Granularity int

const (
	Byte Granularity = iota
	Bit
	Token
)

func (g Granularity) String() string {
	switch g {
	case Byte:
		return "bytes"
	case Bit:
		return "bits"
	case Token:
		return "tokens"
	default:
		return "unknown"
	}
}

// Sym is a 64-bit symbol: a hash of one token.
type Sym = uint64

// S is a tagged string: bytes for Byte/Bit granularity, symbols for Token.
type S struct {
	Granularity Granularity
	Bytes       []byte // Byte/Bit payload
	Syms        []Sym  // Token payload
	Len         int    // logical length in units of Granularity
	Src         string // optional origin tag
	Label       float64
	HasLabel    bool
}

// New constructs a Byte string from raw bytes. The caller still must run
// Preprocess before comparing it.
func New(raw []byte) *S {
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &S{
		Granularity: Byte,
		Bytes:       buf,
		Len:         len(buf),
	}
}

// NewLabeled is New plus an origin tag and numeric label.
func NewLabeled(raw []byte, src string, label float64, hasLabel bool) *S {
	s := New(raw)
	s.Src = src
	s.Label = label
	s.HasLabel = hasLabel
	return s
}

// Empty returns a zero-length string of the given granularity, used by
// measures that center an inner-product space at the empty string.
func Empty(g Granularity) *S {
	return &S{Granularity: g}
}

// Get returns the raw symbol at position i: the byte value, the bit (0/1),
// or the token hash, depending on Granularity.
func (s *S) Get(i int) int64 {
	switch s.Granularity {
	case Byte:
		if i < 0 || i >= s.Len {
			panic(fmt.Sprintf("hstring: byte position %d out of bounds (len %d)", i, s.Len))
		}
		return int64(s.Bytes[i])
	case Bit:
		if i < 0 || i >= s.Len {
			panic(fmt.Sprintf("hstring: bit position %d out of bounds (len %d)", i, s.Len))
		}
		b := s.Bytes[i/8]
		return int64((b >> (7 - uint(i%8))) & 1)
	case Token:
		if i < 0 || i >= s.Len {
			panic(fmt.Sprintf("hstring: token position %d out of bounds (len %d)", i, s.Len))
		}
		return int64(s.Syms[i])
	default:
		panic("hstring: unknown granularity")
	}
}

// Compare returns the signed difference between the symbol at position i of
// x and the symbol at position j of y. x and y must share a granularity.
func Compare(x *S, i int, y *S, j int) int64 {
	if x.Granularity != y.Granularity {
		panic("hstring: compare across mismatched granularities")
	}
	return x.Get(i) - y.Get(j)
}

// Encode serializes s for the preprocessing memo. There is no measure or
// I/O code path that needs this outside of the memo, so a plain gob dump
// of the exported fields is enough.
func (s *S) Encode() []byte {
	var buf bytes.Buffer
	_ = gob.NewEncoder(&buf).Encode(s)
	return buf.Bytes()
}

// Decode reverses Encode. A decode failure yields an empty Byte string
// rather than a panic, so a corrupt memo entry degrades to a cache miss.
func Decode(data []byte) *S {
	var s S
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return &S{}
	}
	return &s
}
