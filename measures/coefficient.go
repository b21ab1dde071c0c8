package measures

import (
	"math"
	"strings"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

func coefficientConfig(ctx *registry.Context) {
	str := ctx.Config.String(ctx.Name, "matching", "bin")
	switch strings.ToLower(str) {
	case "cnt":
		ctx.Opts.Binary = false
	case "bin":
		ctx.Opts.Binary = true
	default:
		ctx.Opts.Binary = false
	}
}

// matchCounts is the (a, b, c) contingency-table triple every sim_*
// coefficient is a function of: a shared symbols, b symbols only in x
// (weighted by the count excess when matching counts), c symbols only in
// y.
type matchCounts struct {
	a, b, c float64
}

func match(ctx *registry.Context, x, y *hstring.S) matchCounts {
	xh, yh := histogram(x), histogram(y)
	var m matchCounts

	if !ctx.Opts.Binary {
		missing := float64(y.Len)
		for sym, xc := range xh {
			yc, ok := yh[sym]
			if !ok {
				m.b += xc
				continue
			}
			m.a += math.Min(xc, yc)
			missing -= math.Min(xc, yc)
			if yc < xc {
				m.b += xc - yc
			}
		}
		m.c += missing
		return m
	}

	missing := float64(len(yh))
	for sym := range xh {
		if _, ok := yh[sym]; !ok {
			m.b++
			continue
		}
		m.a++
		missing--
	}
	m.c += missing
	return m
}

func jaccardCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return m.a / (m.a + m.b + m.c)
}

func simpsonCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return m.a / math.Min(m.a+m.b, m.a+m.c)
}

func braunCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return m.a / math.Max(m.a+m.b, m.a+m.c)
}

func diceCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return 2 * m.a / (2*m.a + m.b + m.c)
}

func sokalCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return m.a / (m.a + 2*(m.b+m.c))
}

func kulczynskiCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return 0.5 * (m.a/(m.a+m.b) + m.a/(m.a+m.c))
}

func otsukaCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	m := match(ctx, x, y)
	if m.b == 0 && m.c == 0 {
		return 1
	}
	return m.a / math.Sqrt((m.a+m.b)*(m.a+m.c))
}
