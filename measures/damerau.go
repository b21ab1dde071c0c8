package measures

import (
	"math"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/registry"
)

func damerauConfig(ctx *registry.Context) {
	ctx.Opts.CostIns = ctx.Config.Float(ctx.Name, "cost_ins", 1.0)
	ctx.Opts.CostDel = ctx.Config.Float(ctx.Name, "cost_del", 1.0)
	ctx.Opts.CostSub = ctx.Config.Float(ctx.Name, "cost_sub", 1.0)
	ctx.Opts.CostTra = ctx.Config.Float(ctx.Name, "cost_tra", 1.0)

	str := ctx.Config.String(ctx.Name, "norm", "none")
	n, _ := norm.ParseLengthNorm(str)
	ctx.Opts.LengthNorm = n
}

func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

// damerauCompare computes the Damerau-Levenshtein distance (adjacent
// transpositions included as an edit operation), using the classic
// last-seen-symbol table to bound the DP to O(n*m).
func damerauCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	if x.Len == 0 && y.Len == 0 {
		return 0
	}

	inf := float64(x.Len + y.Len)

	d := make([][]float64, x.Len+2)
	for i := range d {
		d[i] = make([]float64, y.Len+2)
	}

	d[0][0] = inf
	for i := 0; i <= x.Len; i++ {
		d[i+1][1] = float64(i)
		d[i+1][0] = inf
	}
	for j := 0; j <= y.Len; j++ {
		d[1][j+1] = float64(j)
		d[0][j+1] = inf
	}

	lastSeen := make(map[int64]int)
	for i := 1; i <= x.Len; i++ {
		db := 0
		for j := 1; j <= y.Len; j++ {
			i1 := lastSeen[y.Get(j-1)]
			j1 := db
			dz := 0.0
			if hstring.Compare(x, i-1, y, j-1) != 0 {
				dz = ctx.Opts.CostSub
			} else {
				db = j
			}

			d[i+1][j+1] = min4(
				d[i][j]+dz,
				d[i+1][j]+ctx.Opts.CostIns,
				d[i][j+1]+ctx.Opts.CostDel,
				d[i1][j1]+float64(i-i1-1)+ctx.Opts.CostTra+float64(j-j1-1),
			)
		}
		lastSeen[x.Get(i-1)] = i
	}

	r := d[x.Len+1][y.Len+1]

	if ctx.Opts.LengthNorm == norm.LengthNone {
		return r
	}
	if math.Abs(ctx.Opts.CostIns-ctx.Opts.CostDel) < 1e-6 &&
		math.Abs(ctx.Opts.CostDel-ctx.Opts.CostSub) < 1e-6 &&
		math.Abs(ctx.Opts.CostSub-ctx.Opts.CostTra) < 1e-6 {
		w := math.Max(math.Max(math.Max(ctx.Opts.CostIns, ctx.Opts.CostDel), ctx.Opts.CostSub), ctx.Opts.CostTra)
		return 1 - norm.WeightedLength(ctx.Opts.LengthNorm, r, w, x, y)
	}
	return 1 - norm.Length(ctx.Opts.LengthNorm, r, x, y)
}
