package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

func jarowinklerConfig(ctx *registry.Context) {
	ctx.Opts.Scaling = ctx.Config.Float(ctx.Name, "scaling", 0.1)
}

// jaroCompare computes the Jaro distance using David Necas (Yeti)'s
// earliest-position assignment of common characters. The literature never
// pins down how common characters should be matched when more than one
// assignment is possible; earliest-position is a known-suboptimal but
// deterministic choice (it double-counts as a transposition in cases like
// jaro("Jaro", "Joaro")), kept here rather than "fixed" because no
// canonical optimal algorithm exists to replace it with.
func jaroCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	if x.Len == 0 || y.Len == 0 {
		if x.Len == 0 && y.Len == 0 {
			return 0.0
		}
		return 1.0
	}

	// Make x the shorter (or equally long) string.
	if x.Len > y.Len {
		x, y = y, x
	}

	halflen := (x.Len + 1) / 2
	idx := make([]int, x.Len)

	match := 0
	// Overlap range anchored to the left.
	for i := 0; i < halflen; i++ {
		for j := 0; j < i+halflen && j < x.Len; j++ {
			if hstring.Compare(x, j, y, i) == 0 && idx[j] == 0 {
				match++
				idx[j] = match
				break
			}
		}
	}

	// Overlap range anchored to the right.
	to := x.Len + halflen
	if y.Len < to {
		to = y.Len
	}
	for i := halflen; i < to; i++ {
		for j := i - halflen; j < x.Len; j++ {
			if hstring.Compare(x, j, y, i) == 0 && idx[j] == 0 {
				match++
				idx[j] = match
				break
			}
		}
	}
	if match == 0 {
		return 1.0
	}

	trans := 0
	i := 0
	for j := 0; j < x.Len; j++ {
		if idx[j] != 0 {
			i++
			if idx[j] != i {
				trans++
			}
		}
	}

	md := float64(match)
	return 1.0 - (md/float64(x.Len)+md/float64(y.Len)+1.0-float64(trans)/md/2.0)/3.0
}

// jarowinklerCompare applies a bonus for a shared prefix (up to 4 symbols)
// to the Jaro distance.
func jarowinklerCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	d := jaroCompare(ctx, x, y)

	m := minInt(minInt(x.Len, y.Len), 4)
	l := 0
	for ; l < m; l++ {
		if hstring.Compare(x, l, y, l) != 0 {
			break
		}
	}

	return d - float64(l)*ctx.Opts.Scaling*d
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
