package matrix

// Cell identifies one matrix entry by its absolute string indices.
type Cell struct {
	I, J int
}

// View is the rectangular (or triangular) output buffer of a single
// matrix run: row_range x col_range, stored as the upper triangle plus
// diagonal when the two ranges coincide (spec.md §4.6), or as a full
// dense grid otherwise.
type View struct {
	Row, Col  Range
	symmetric bool
	values    []float32
}

// NewView allocates a view over row x col. Equal ranges are detected and
// stored triangularly to halve both memory and work.
func NewView(row, col Range) *View {
	v := &View{Row: row, Col: col, symmetric: row == col}
	if v.symmetric {
		n := row.Len()
		v.values = make([]float32, n*(n+1)/2)
	} else {
		v.values = make([]float32, row.Len()*col.Len())
	}
	return v
}

// Symmetric reports whether this view stores only the upper triangle.
func (v *View) Symmetric() bool { return v.symmetric }

// index maps absolute (i,j) to a slot in values. For the symmetric case it
// swaps the relative indices when i>j, so Set/Get below accept either
// order.
func (v *View) index(i, j int) int {
	ri, rj := i-v.Row.Start, j-v.Col.Start
	if v.symmetric {
		n := v.Row.Len()
		if ri > rj {
			ri, rj = rj, ri
		}
		// Row-major index into the upper triangle: the first ri rows each
		// contribute (n-row) entries, then rj-ri more within row ri.
		return ri*n - ri*(ri-1)/2 + (rj - ri)
	}
	return ri*v.Col.Len() + (rj)
}

// Set writes the value computed for strings at absolute indices i,j.
func (v *View) Set(i, j int, val float32) {
	v.values[v.index(i, j)] = val
}

// Get reads M[i][j], reflecting across the diagonal for a symmetric view.
func (v *View) Get(i, j int) float32 {
	return v.values[v.index(i, j)]
}

// Cells returns the ordered list of (i,j) this view is responsible for
// computing: the upper triangle including the diagonal when symmetric,
// otherwise every (row, col) pair, row-major.
func (v *View) Cells() []Cell {
	if v.symmetric {
		n := v.Row.Len()
		cells := make([]Cell, 0, n*(n+1)/2)
		for ri := 0; ri < n; ri++ {
			for rj := ri; rj < n; rj++ {
				cells = append(cells, Cell{I: v.Row.Start + ri, J: v.Col.Start + rj})
			}
		}
		return cells
	}
	cells := make([]Cell, 0, v.Row.Len()*v.Col.Len())
	for ri := 0; ri < v.Row.Len(); ri++ {
		for rj := 0; rj < v.Col.Len(); rj++ {
			cells = append(cells, Cell{I: v.Row.Start + ri, J: v.Col.Start + rj})
		}
	}
	return cells
}

// Dense materializes the full (r1-r0) x (c1-c0) grid, reflecting the
// triangle if this view is symmetric. Intended for output formatting,
// not for the hot path.
func (v *View) Dense() [][]float32 {
	out := make([][]float32, v.Row.Len())
	for ri := range out {
		out[ri] = make([]float32, v.Col.Len())
		for rj := range out[ri] {
			out[ri][rj] = v.Get(v.Row.Start+ri, v.Col.Start+rj)
		}
	}
	return out
}
