package measures

import (
	"math"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func hammingConfig(ctx *registry.Context) {
	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseLengthNorm(str)
	ctx.Opts.LengthNorm = n
}

// hammingCompare computes the Hamming distance. Strings of unequal length
// count every extra trailing symbol of the longer one as a mismatch.
func hammingCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	var d float64
	n := x.Len
	if y.Len < n {
		n = y.Len
	}
	for i := 0; i < n; i++ {
		if hstring.Compare(x, i, y, i) != 0 {
			d++
		}
	}
	d += math.Abs(float64(y.Len - x.Len))

	return norm.Length(ctx.Opts.LengthNorm, d, x, y)
}

// leeConfig and leeCompare implement the Lee distance: a cyclic metric
// over a bounded symbol alphabet, [MinSym,MaxSym].
func leeConfig(ctx *registry.Context) {
	ctx.Opts.MinSym = ctx.Config.Int(ctx.Name, "min_sym", 0)
	ctx.Opts.MaxSym = ctx.Config.Int(ctx.Name, "max_sym", 255)
}

func leeCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	q := float64(ctx.Opts.MaxSym - ctx.Opts.MinSym)
	var d float64

	n := x.Len
	if y.Len > n {
		n = y.Len
	}
	for i := 0; i < n; i++ {
		var ad float64
		switch {
		case i < x.Len && i < y.Len:
			ad = math.Abs(float64(hstring.Compare(x, i, y, i)) - float64(ctx.Opts.MinSym))
		case i < x.Len:
			ad = math.Abs(float64(x.Get(i)) - float64(ctx.Opts.MinSym))
		default:
			ad = math.Abs(float64(y.Get(i)) - float64(ctx.Opts.MinSym))
		}
		if ad > q {
			ad = q - 1
		}
		d += math.Min(ad, q-ad)
	}
	return d
}
