package measures

import (
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func osaConfig(ctx *registry.Context) {
	ctx.Opts.CostIns = ctx.Config.Float(ctx.Name, "cost_ins", 1.0)
	ctx.Opts.CostDel = ctx.Config.Float(ctx.Name, "cost_del", 1.0)
	ctx.Opts.CostSub = ctx.Config.Float(ctx.Name, "cost_sub", 1.0)
	ctx.Opts.CostTra = ctx.Config.Float(ctx.Name, "cost_tra", 1.0)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseLengthNorm(str)
	ctx.Opts.LengthNorm = n
}

// osaCompare computes the optimal string alignment distance: like
// Damerau-Levenshtein but each substring may be transposed at most once
// (no nested/overlapping transpositions), a simpler restriction that
// fits a plain O(n*m) matrix with no auxiliary symbol table.
func osaCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	if x.Len == 0 && y.Len == 0 {
		return 0
	}

	d := make([][]float64, x.Len+1)
	for i := range d {
		d[i] = make([]float64, y.Len+1)
	}
	for i := 0; i <= x.Len; i++ {
		d[i][0] = float64(i) * ctx.Opts.CostIns
	}
	for j := 0; j <= y.Len; j++ {
		d[0][j] = float64(j) * ctx.Opts.CostIns
	}

	for i := 1; i <= x.Len; i++ {
		for j := 1; j <= y.Len; j++ {
			match := hstring.Compare(x, i-1, y, j-1) == 0

			a := d[i-1][j] + ctx.Opts.CostIns
			if b := d[i][j-1] + ctx.Opts.CostDel; b < a {
				a = b
			}
			subCost := 0.0
			if !match {
				subCost = ctx.Opts.CostSub
			}
			if b := d[i-1][j-1] + subCost; b < a {
				a = b
			}
			if i > 1 && j > 1 &&
				hstring.Compare(x, i-1, y, j-2) == 0 &&
				hstring.Compare(x, i-2, y, j-1) == 0 {
				traCost := 0.0
				if !match {
					traCost = ctx.Opts.CostTra
				}
				if b := d[i-2][j-2] + traCost; b < a {
					a = b
				}
			}
			d[i][j] = a
		}
	}

	return norm.Length(ctx.Opts.LengthNorm, d[x.Len][y.Len], x, y)
}
