// Package measures implements the concrete similarity and distance
// measures: edit distances, token/bag coefficients, compression
// distance, and convolution kernels, each registered under its
// canonical name (and any aliases) with the registry package.
package measures

import (
	"math"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func bagConfig(ctx *registry.Context) {
	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseLengthNorm(str)
	ctx.Opts.LengthNorm = n
}

// histogram builds a symbol -> count map, the Go stand-in for the
// original's uthash-based bag.
func histogram(x *hstring.S) map[int64]float64 {
	h := make(map[int64]float64, x.Len)
	for i := 0; i < x.Len; i++ {
		h[x.Get(i)]++
	}
	return h
}

// bagCompare computes the bag distance: a fast lower bound on the edit
// distance, approximated from symbol-count histograms.
func bagCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	xh, yh := histogram(x), histogram(y)

	var xd, yd float64
	missing := float64(y.Len)
	for sym, xc := range xh {
		yc, ok := yh[sym]
		if !ok {
			xd += xc
			continue
		}
		diff := xc - yc
		xd += math.Max(diff, 0)
		yd += math.Max(-diff, 0)
		missing -= yc
	}
	yd += missing

	return norm.Length(ctx.Opts.LengthNorm, math.Max(xd, yd), x, y)
}
