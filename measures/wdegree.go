package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func wdegreeConfig(ctx *registry.Context) {
	ctx.Opts.Degree = ctx.Config.Int(ctx.Name, "degree", 3)
	ctx.Opts.Shift = ctx.Config.Int(ctx.Name, "shift", 0)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseKernelNorm(str)
	ctx.Opts.KernelNorm = n
}

// weight scores a matching block of the given length under the
// weighted-degree kernel's degree parameter: a cubic ramp up to length
// degree, then linear growth beyond it.
func weight(length float64, degree int) float64 {
	d := float64(degree)
	if length <= d {
		w := length * (-length*length + 3*d*length + 3*d + 1)
		return w / (3 * d * (d + 1))
	}
	return (3*length - d + 1) / 3
}

// wdegreeBlock sums weight(...) over every maximal matching run between
// x[xs:xs+len] and y[ys:ys+len].
func wdegreeBlock(x, y *hstring.S, degree, xs, ys, length int) float64 {
	var k float64
	start := -1
	i := 0
	for ; i < length; i++ {
		if hstring.Compare(x, i+xs, y, i+ys) == 0 {
			if start == -1 {
				start = i
			}
			continue
		}
		if start == -1 {
			continue
		}
		k += weight(float64(i-start), degree)
		start = -1
	}
	if start != -1 {
		k += weight(float64(i-start), degree)
	}
	return k
}

func wdegreeKernel(ctx *registry.Context, x, y *hstring.S) float64 {
	var k float64
	for s := -ctx.Opts.Shift; s <= ctx.Opts.Shift; s++ {
		var length int
		if s <= 0 {
			length = maxInt(minInt(x.Len, y.Len+s), 0)
			k += wdegreeBlock(x, y, ctx.Opts.Degree, 0, -s, length)
		} else {
			length = maxInt(minInt(x.Len-s, y.Len), 0)
			k += wdegreeBlock(x, y, ctx.Opts.Degree, s, 0, length)
		}
	}
	return k
}

// wdegreeCompare computes the weighted-degree kernel with shift: strings
// of unequal length simply leave the excess of the longer one unmatched,
// per the kernel's block-matching definition.
func wdegreeCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	k := wdegreeKernel(ctx, x, y)
	return norm.Kernel(ctx.Opts.KernelNorm, ctx.Cache, k, x, y, func(a, b *hstring.S) float64 {
		return wdegreeKernel(ctx, a, b)
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
