package hstring

import (
	"fmt"
	"net/url"
)

// PreprocessPlan bundles the configuration and shared, read-only tables
// (delimiters, stop tokens) that preprocessing needs. It is built once,
// before parallel work begins, and shared freely across threads.
type PreprocessPlan struct {
	DecodeStr   bool
	ReverseStr  bool
	Soundex     bool
	Granularity Granularity
	Delims      *Delimiters
	Stop        *StopTokens
}

// Preprocess applies the pipeline to s in place: URI decode, reverse,
// Soundex, granularity conversion, and stop-token filtering, in that
// order. Configuration is frozen for the string once this returns.
func (s *S) Preprocess(plan *PreprocessPlan) error {
	if plan.DecodeStr {
		if err := s.decodeURI(); err != nil {
			return fmt.Errorf("hstring: decode_str: %w", err)
		}
	}
	if plan.ReverseStr {
		s.reverse()
	}
	if plan.Soundex {
		s.Soundex()
	}

	switch plan.Granularity {
	case Byte:
		// no-op
	case Token:
		if plan.Delims == nil || !plan.Delims.Initialized() {
			return fmt.Errorf("hstring: granularity=tokens requires an initialized delimiter set")
		}
		s.tokenize(plan.Delims)
	case Bit:
		s.toBits()
	default:
		return fmt.Errorf("hstring: unknown granularity %v", plan.Granularity)
	}

	if plan.Stop != nil && s.Granularity == Token {
		s.filterStopTokens(plan.Stop)
	}

	return nil
}

// decodeURI applies URI-percent decoding in place, adjusting Len.
func (s *S) decodeURI() error {
	decoded, err := url.QueryUnescape(string(s.Bytes[:s.Len]))
	if err != nil {
		return err
	}
	s.Bytes = []byte(decoded)
	s.Len = len(s.Bytes)
	return nil
}

// reverse reverses the byte buffer in place.
func (s *S) reverse() {
	b := s.Bytes[:s.Len]
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// tokenize walks the byte buffer, collapsing runs of delimiters into one,
// and emits one 64-bit symbol (a MurmurHash64B of the token's bytes) per
// token found between delimiters.
func (s *S) tokenize(d *Delimiters) {
	var syms []Sym
	raw := s.Bytes[:s.Len]

	start := -1
	flushToken := func(end int) {
		if start != -1 && end > start {
			syms = append(syms, murmurHash64B(raw[start:end], hashSeed))
		}
		start = -1
	}

	for i := 0; i < len(raw); i++ {
		if d.Is(raw[i]) {
			flushToken(i)
			continue
		}
		if start == -1 {
			start = i
		}
	}
	flushToken(len(raw))

	s.Syms = syms
	s.Bytes = nil
	s.Len = len(syms)
	s.Granularity = Token
}

// toBits reinterprets the byte buffer as a sequence of individually
// addressable bits, without touching the underlying buffer.
func (s *S) toBits() {
	s.Len = s.Len * 8
	s.Granularity = Bit
}

// filterStopTokens removes any symbol present in the stop-token set.
func (s *S) filterStopTokens(st *StopTokens) {
	kept := s.Syms[:0:0]
	for _, sym := range s.Syms {
		if !st.Has(sym) {
			kept = append(kept, sym)
		}
	}
	s.Syms = kept
	s.Len = len(kept)
}

// ParseDelimSpec is a convenience wrapper matching the config surface's
// "%HH escapes plus literal bytes" delimiter syntax (spec.md §6).
func ParseDelimSpec(d *Delimiters, spec string) error {
	return d.ParseDelim(spec)
}
