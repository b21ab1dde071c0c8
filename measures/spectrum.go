package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func spectrumConfig(ctx *registry.Context) {
	ctx.Opts.Length = ctx.Config.Int(ctx.Name, "length", 3)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseKernelNorm(str)
	ctx.Opts.KernelNorm = n
}

// windowHistogram counts every contiguous window of the given length,
// identified by its substring hash the way the rest of the package keys
// n-grams (hstring.HashSub).
func windowHistogram(s *hstring.S, length int) map[uint64]float64 {
	if s.Len < length {
		return nil
	}
	h := make(map[uint64]float64, s.Len-length+1)
	for i := 0; i+length <= s.Len; i++ {
		h[s.HashSub(i, length)]++
	}
	return h
}

func spectrumKernel(x, y *hstring.S, length int) float64 {
	xh := windowHistogram(x, length)
	yh := windowHistogram(y, length)

	var k float64
	for hash, xc := range xh {
		if yc, ok := yh[hash]; ok {
			k += xc * yc
		}
	}
	return k
}

// spectrumCompare computes the spectrum (n-gram) kernel: the dot product
// of the strings' length-L contiguous-window count vectors.
func spectrumCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	k := spectrumKernel(x, y, ctx.Opts.Length)
	return norm.Kernel(ctx.Opts.KernelNorm, ctx.Cache, k, x, y, func(a, b *hstring.S) float64 {
		return spectrumKernel(a, b, ctx.Opts.Length)
	})
}
