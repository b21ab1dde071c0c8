package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func levenshteinConfig(ctx *registry.Context) {
	ctx.Opts.CostIns = ctx.Config.Float(ctx.Name, "cost_ins", 1.0)
	ctx.Opts.CostDel = ctx.Config.Float(ctx.Name, "cost_del", 1.0)
	ctx.Opts.CostSub = ctx.Config.Float(ctx.Name, "cost_sub", 1.0)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseLengthNorm(str)
	ctx.Opts.LengthNorm = n
}

// levenshteinCompare computes the weighted Levenshtein distance with a
// two-row rolling DP matrix (Stephen Toub's approach), which handles
// arbitrary insertion/deletion/substitution costs uniformly rather than
// special-casing the equal-cost case with a separate fast path.
func levenshteinCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	if x.Len == 0 && y.Len == 0 {
		return 0
	}

	curr := make([]float64, y.Len+1)
	next := make([]float64, y.Len+1)
	for j := 0; j <= y.Len; j++ {
		curr[j] = float64(j) * ctx.Opts.CostDel
	}

	for i := 1; i <= x.Len; i++ {
		next[0] = float64(i) * ctx.Opts.CostIns
		for j := 1; j <= y.Len; j++ {
			a := curr[j] + ctx.Opts.CostIns
			b := next[j-1] + ctx.Opts.CostDel
			if b < a {
				a = b
			}

			subCost := 0.0
			if hstring.Compare(x, i-1, y, j-1) != 0 {
				subCost = ctx.Opts.CostSub
			}
			b = curr[j-1] + subCost
			if b < a {
				a = b
			}
			next[j] = a
		}
		curr, next = next, curr
	}

	return norm.Length(ctx.Opts.LengthNorm, curr[y.Len], x, y)
}
