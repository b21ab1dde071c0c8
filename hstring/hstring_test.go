package hstring

import "testing"

func TestHash2Symmetric(t *testing.T) {
	x := New([]byte("spire"))
	y := New([]byte("fare"))

	if Hash2(x, y) != Hash2(y, x) {
		t.Fatalf("Hash2 is not symmetric")
	}
}

func TestHash1Deterministic(t *testing.T) {
	x := New([]byte("abba"))
	y := New([]byte("abba"))
	if x.Hash1() != y.Hash1() {
		t.Fatalf("Hash1 differs for identical strings")
	}
}

func TestTokenize(t *testing.T) {
	d := &Delimiters{}
	if err := d.ParseDelim("."); err != nil {
		t.Fatal(err)
	}

	s := New([]byte("ab.ba"))
	s.tokenize(d)
	if s.Granularity != Token {
		t.Fatalf("expected Token granularity")
	}
	if s.Len != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.Len)
	}
}

func TestTokenizeCollapsesDelimiterRuns(t *testing.T) {
	d := &Delimiters{}
	if err := d.ParseDelim("."); err != nil {
		t.Fatal(err)
	}

	s := New([]byte("x...y..")) // one run, then trailing run
	s.tokenize(d)
	if s.Len != 2 {
		t.Fatalf("expected 2 tokens (x, y), got %d", s.Len)
	}
}

func TestToBits(t *testing.T) {
	s := New([]byte{0b10110000})
	s.toBits()
	if s.Len != 8 {
		t.Fatalf("expected 8 bits, got %d", s.Len)
	}
	if s.Get(0) != 1 || s.Get(1) != 0 || s.Get(2) != 1 || s.Get(3) != 1 {
		t.Fatalf("unexpected bit values")
	}
}

func TestSoundex(t *testing.T) {
	s := New([]byte("Robert"))
	s.Soundex()
	if string(s.Bytes) != "R163" {
		t.Fatalf("expected R163, got %q", s.Bytes)
	}
}

func TestPreprocessRequiresDelimitersForTokens(t *testing.T) {
	s := New([]byte("a b"))
	plan := &PreprocessPlan{Granularity: Token, Delims: &Delimiters{}}
	if err := s.Preprocess(plan); err == nil {
		t.Fatalf("expected error for uninitialized delimiters")
	}
}

func TestCompareByte(t *testing.T) {
	x := New([]byte("abba"))
	y := New([]byte("babb"))
	if Compare(x, 0, y, 0) == 0 {
		t.Fatalf("expected nonzero compare for differing bytes")
	}
	if Compare(x, 0, x, 0) != 0 {
		t.Fatalf("expected zero compare for identical position")
	}
}
