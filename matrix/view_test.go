package matrix

import "testing"

func TestViewSymmetricReflectsAcrossDiagonal(t *testing.T) {
	r := Range{0, 4}
	v := NewView(r, r)
	if !v.Symmetric() {
		t.Fatal("expected symmetric view when row == col")
	}
	v.Set(1, 3, 42)
	if got := v.Get(3, 1); got != 42 {
		t.Fatalf("got %v, want 42 (reflected)", got)
	}
}

func TestViewCellsUpperTriangleIncludesDiagonal(t *testing.T) {
	r := Range{0, 3}
	v := NewView(r, r)
	cells := v.Cells()
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, c := range cells {
		if c != want[i] {
			t.Fatalf("cell %d: got %+v, want %+v", i, c, want[i])
		}
	}
}

func TestViewAsymmetricDenseGrid(t *testing.T) {
	row := Range{0, 2}
	col := Range{2, 5}
	v := NewView(row, col)
	if v.Symmetric() {
		t.Fatal("expected asymmetric view when row != col")
	}
	cells := v.Cells()
	if len(cells) != row.Len()*col.Len() {
		t.Fatalf("got %d cells, want %d", len(cells), row.Len()*col.Len())
	}
	v.Set(0, 2, 1)
	v.Set(1, 4, 2)
	dense := v.Dense()
	if dense[0][0] != 1 || dense[1][2] != 2 {
		t.Fatalf("dense grid mismatch: %+v", dense)
	}
}

func TestViewAsymmetricDoesNotReflect(t *testing.T) {
	row := Range{0, 3}
	col := Range{1, 4}
	// Distinct ranges select dense storage: a write lands only in its own
	// cell, and its mirror image across the diagonal stays untouched.
	v := NewView(row, col)
	v.Set(0, 1, 9)
	if v.Get(0, 1) != 9 {
		t.Fatalf("expected direct get to return stored value")
	}
	v.Set(1, 2, 7)
	if got := v.Get(2, 1); got != 0 {
		t.Fatalf("expected mirror cell (2,1) untouched, got %v", got)
	}
}
