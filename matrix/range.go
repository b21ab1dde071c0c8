package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [Start, End) over the input string index
// space, the unit row_range/col_range are expressed in.
type Range struct {
	Start, End int
}

// Len reports the number of indices the range covers.
func (r Range) Len() int { return r.End - r.Start }

// FullRange covers every index in a collection of n strings.
func FullRange(n int) Range { return Range{Start: 0, End: n} }

// ParseRange decodes a "start:end" spec (spec.md §6's row_range/col_range
// syntax). An empty spec means "the whole collection", resolved here
// against n, since the spec itself doesn't know n.
func ParseRange(spec string, n int) (Range, error) {
	if spec == "" {
		return FullRange(n), nil
	}
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("matrix: range %q is not \"start:end\"", spec)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("matrix: range %q: invalid start: %w", spec, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("matrix: range %q: invalid end: %w", spec, err)
	}
	if start < 0 || end > n || start > end {
		return Range{}, fmt.Errorf("matrix: range %q out of bounds for %d strings", spec, n)
	}
	return Range{Start: start, End: end}, nil
}

// Split is a (blocks, id) pair: the ordered cell list is cut into `Blocks`
// contiguous, as-equal-as-possible chunks and only chunk `ID` (0-based) is
// kept, letting an external scheduler parallelise across processes.
type Split struct {
	Blocks, ID int
}

// NoSplit keeps every cell: one block containing everything.
var NoSplit = Split{Blocks: 1, ID: 0}

// ParseSplit decodes a "blocks:id" spec. An empty spec means NoSplit.
func ParseSplit(spec string) (Split, error) {
	if spec == "" {
		return NoSplit, nil
	}
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return Split{}, fmt.Errorf("matrix: split %q is not \"blocks:id\"", spec)
	}
	blocks, err := strconv.Atoi(parts[0])
	if err != nil {
		return Split{}, fmt.Errorf("matrix: split %q: invalid blocks: %w", spec, err)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return Split{}, fmt.Errorf("matrix: split %q: invalid id: %w", spec, err)
	}
	if blocks <= 0 || id < 0 || id >= blocks {
		return Split{}, fmt.Errorf("matrix: split %q out of bounds", spec)
	}
	return Split{Blocks: blocks, ID: id}, nil
}

// bounds returns the [lo, hi) slice of a total-cells-long list assigned to
// chunk s.ID, dividing as evenly as possible (remainder spread over the
// first chunks).
func (s Split) bounds(total int) (lo, hi int) {
	base := total / s.Blocks
	rem := total % s.Blocks
	for i := 0; i < s.ID; i++ {
		lo += base
		if i < rem {
			lo++
		}
	}
	hi = lo + base
	if s.ID < rem {
		hi++
	}
	return lo, hi
}
