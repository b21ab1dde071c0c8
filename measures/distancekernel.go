package measures

import (
	"math"
	"strings"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

// kernDistanceConfig wires kern_distance (alias kern_dsk): a distance
// substitution kernel, built by embedding an arbitrary named distance
// measure into an implicit inner-product space centered at the empty
// string (Haasdonk and Bahlmann, 2004).
func kernDistanceConfig(ctx *registry.Context) {
	ctx.Opts.DistName = ctx.Config.String(ctx.Name, "dist", "dist_bag")
	if err := ctx.ResolveInner(ctx.Opts.DistName); err != nil {
		// Fall back to dist_bag and continue; no warning is logged.
		_ = ctx.ResolveInner("dist_bag")
	}

	switch strings.ToLower(ctx.Config.String(ctx.Name, "type", "linear")) {
	case "poly":
		ctx.Opts.Subst = registry.SubstPoly
	case "neg":
		ctx.Opts.Subst = registry.SubstNeg
	case "rbf":
		ctx.Opts.Subst = registry.SubstRBF
	default:
		ctx.Opts.Subst = registry.SubstLinear
	}

	ctx.Opts.Gamma = ctx.Config.Float(ctx.Name, "gamma", 1.0)
	ctx.Opts.Power = ctx.Config.Float(ctx.Name, "degree", 1.0)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseKernelNorm(str)
	ctx.Opts.KernelNorm = n
}

// kernDistanceDot computes the inner product implied by centering the
// wrapped distance at the empty string, caching the two self-distances.
func kernDistanceDot(ctx *registry.Context, x, y *hstring.S) float64 {
	empty := hstring.Empty(x.Granularity)

	d1 := cachedDist(ctx, x, empty)
	d2 := cachedDist(ctx, y, empty)
	d3 := ctx.Inner(x, y)

	return -0.5 * (d3*d3 - d2*d2 - d1*d1)
}

func cachedDist(ctx *registry.Context, x, empty *hstring.S) float64 {
	key := x.Hash1()
	if ctx.Cache != nil {
		if v, ok := ctx.Cache.Load(key, ctx.CacheID()); ok {
			return float64(v)
		}
	}
	v := ctx.Inner(x, empty)
	if ctx.Cache != nil {
		ctx.Cache.Store(key, ctx.CacheID(), float32(v))
	}
	return v
}

func kernDistanceKernel(ctx *registry.Context, x, y *hstring.S) float64 {
	switch ctx.Opts.Subst {
	case registry.SubstPoly:
		return math.Pow(1+ctx.Opts.Gamma*kernDistanceDot(ctx, x, y), ctx.Opts.Power)
	case registry.SubstNeg:
		d := ctx.Inner(x, y)
		return -math.Pow(d, ctx.Opts.Power)
	case registry.SubstRBF:
		d := ctx.Inner(x, y)
		return math.Exp(-ctx.Opts.Gamma * d * d)
	default:
		return kernDistanceDot(ctx, x, y)
	}
}

func kernDistanceCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	k := kernDistanceKernel(ctx, x, y)
	return norm.Kernel(ctx.Opts.KernelNorm, ctx.Cache, k, x, y, func(a, b *hstring.S) float64 {
		return kernDistanceKernel(ctx, a, b)
	})
}

// distKernelConfig wires dist_kernel: a Euclidean distance derived from
// any named kernel function by simple geometry (||x-y||^2 = k(x,x) +
// k(y,y) - 2k(x,y)).
func distKernelConfig(ctx *registry.Context) {
	ctx.Opts.KernName = ctx.Config.String(ctx.Name, "kern", "kern_wdegree")
	if err := ctx.ResolveInner(ctx.Opts.KernName); err != nil {
		_ = ctx.ResolveInner("kern_wdegree")
	}

	ctx.Opts.Squared = ctx.Config.Bool(ctx.Name, "squared", true)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseKernelNorm(str)
	ctx.Opts.KernelNorm = n
}

// distKernelKernel re-applies dist_kernel's own normalization around the
// wrapped kernel, on top of whatever normalization that kernel already
// applies internally.
func distKernelKernel(ctx *registry.Context, x, y *hstring.S) float64 {
	k := ctx.Inner(x, y)
	return norm.Kernel(ctx.Opts.KernelNorm, ctx.Cache, k, x, y, ctx.Inner)
}

func distKernelCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	k1 := distKernelKernel(ctx, x, x)
	k2 := distKernelKernel(ctx, y, y)
	k3 := distKernelKernel(ctx, x, y)
	d := k1 + k2 - 2*k3

	if ctx.Opts.Squared {
		return d
	}
	return math.Sqrt(d)
}
