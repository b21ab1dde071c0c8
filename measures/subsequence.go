package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func subsequenceConfig(ctx *registry.Context) {
	ctx.Opts.Length = ctx.Config.Int(ctx.Name, "length", 3)
	ctx.Opts.Lambda = ctx.Config.Float(ctx.Name, "lambda", 0.1)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseKernelNorm(str)
	ctx.Opts.KernelNorm = n
}

func symbols(s *hstring.S) []int64 {
	out := make([]int64, s.Len)
	for i := range out {
		out[i] = s.Get(i)
	}
	return out
}

// subsequenceKernel is the gap-weighted string subsequence kernel (SSK) of
// Lodhi, Saunders, Shawe-Taylor, Cristianini and Watkins (2002): the
// weighted count of common, possibly non-contiguous subsequences of
// length n, discounted by lambda per symbol of gap they span.
func subsequenceKernel(s, t []int64, n int, lambda float64) float64 {
	ls, lt := len(s), len(t)
	if n <= 0 || ls < n || lt < n {
		return 0
	}

	// kp[a][b] = K'_{level}(s[:a], t[:b]), rolled level by level.
	kp := make([][]float64, ls+1)
	for a := range kp {
		kp[a] = make([]float64, lt+1)
		for b := range kp[a] {
			kp[a][b] = 1
		}
	}

	for level := 1; level < n; level++ {
		next := make([][]float64, ls+1)
		for a := range next {
			next[a] = make([]float64, lt+1)
		}
		for a := 1; a <= ls; a++ {
			var running float64
			for b := 1; b <= lt; b++ {
				contrib := 0.0
				if s[a-1] == t[b-1] {
					contrib = lambda * kp[a-1][b-1]
				}
				running = lambda * (running + contrib)
				next[a][b] = lambda*next[a-1][b] + running
			}
		}
		kp = next
	}

	var k float64
	for a := 1; a <= ls; a++ {
		for b := 1; b <= lt; b++ {
			if s[a-1] == t[b-1] {
				k += lambda * lambda * kp[a-1][b-1]
			}
		}
	}
	return k
}

func subsequenceCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	xs, ys := symbols(x), symbols(y)
	k := subsequenceKernel(xs, ys, ctx.Opts.Length, ctx.Opts.Lambda)
	return norm.Kernel(ctx.Opts.KernelNorm, ctx.Cache, k, x, y, func(a, b *hstring.S) float64 {
		return subsequenceKernel(symbols(a), symbols(b), ctx.Opts.Length, ctx.Opts.Lambda)
	})
}
