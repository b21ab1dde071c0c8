package matrix

import "testing"

func TestParseRangeEmptyIsFull(t *testing.T) {
	r, err := ParseRange("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if r != (Range{0, 10}) {
		t.Fatalf("got %+v", r)
	}
}

func TestParseRangeExplicit(t *testing.T) {
	r, err := ParseRange("2:5", 10)
	if err != nil {
		t.Fatal(err)
	}
	if r != (Range{2, 5}) {
		t.Fatalf("got %+v", r)
	}
}

func TestParseRangeOutOfBounds(t *testing.T) {
	if _, err := ParseRange("2:50", 10); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseSplitEmptyIsNoSplit(t *testing.T) {
	s, err := ParseSplit("")
	if err != nil {
		t.Fatal(err)
	}
	if s != NoSplit {
		t.Fatalf("got %+v", s)
	}
}

func TestSplitBoundsEvenDivision(t *testing.T) {
	s := Split{Blocks: 4, ID: 1}
	lo, hi := s.bounds(8)
	if lo != 2 || hi != 4 {
		t.Fatalf("got lo=%d hi=%d", lo, hi)
	}
}

func TestSplitBoundsRemainderSpreadOverFirstChunks(t *testing.T) {
	// 10 cells / 3 blocks -> sizes 4,3,3
	s0 := Split{Blocks: 3, ID: 0}
	s1 := Split{Blocks: 3, ID: 1}
	s2 := Split{Blocks: 3, ID: 2}
	lo0, hi0 := s0.bounds(10)
	lo1, hi1 := s1.bounds(10)
	lo2, hi2 := s2.bounds(10)
	if hi0-lo0 != 4 || hi1-lo1 != 3 || hi2-lo2 != 3 {
		t.Fatalf("got sizes %d %d %d", hi0-lo0, hi1-lo1, hi2-lo2)
	}
	if lo0 != 0 || hi0 != lo1 || hi1 != lo2 || hi2 != 10 {
		t.Fatalf("chunks not contiguous: %d-%d %d-%d %d-%d", lo0, hi0, lo1, hi1, lo2, hi2)
	}
}
