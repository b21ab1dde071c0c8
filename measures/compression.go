package measures

import (
	"bytes"
	"math"

	"github.com/klauspost/compress/flate"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

func compressionConfig(ctx *registry.Context) {
	level := ctx.Config.Int(ctx.Name, "level", 9)
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		level = 9
	}
	ctx.Opts.Level = level
}

// natural returns the raw byte encoding a string compresses as: its bytes
// directly for Byte/Bit granularity, or each token symbol serialized
// little-endian for Token granularity (hstring.natural, exported via the
// package's own helper since compression needs the exact same width rule
// the hash functions use).
func natural(s *hstring.S) []byte {
	return hstring.Natural(s)
}

func compress(level int, data []byte) int {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		// Only returned for out-of-range levels, which compressionConfig
		// already replaces with the default level 9.
		panic(err)
	}
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Len()
}

func compressPair(level int, a, b []byte) int {
	joined := make([]byte, 0, len(a)+len(b))
	joined = append(joined, b...)
	joined = append(joined, a...)
	return compress(level, joined)
}

// compressionCompare computes the normalized compression distance (NCD):
// the symmetrized relative cost of compressing x and y together versus
// compressing each alone.
func compressionCompare(ctx *registry.Context, x, y *hstring.S) float64 {
	level := ctx.Opts.Level

	xk, yk := x.Hash1(), y.Hash1()
	xl := cachedCompress(ctx, xk, level, natural(x))
	yl := cachedCompress(ctx, yk, level, natural(y))

	xyk, yxk := hstring.Hash2(x, y), hstring.Hash2(y, x)
	xyl := cachedCompressPair(ctx, xyk, level, natural(x), natural(y))
	yxl := cachedCompressPair(ctx, yxk, level, natural(y), natural(x))

	return (0.5*(xyl+yxl) - math.Min(xl, yl)) / math.Max(xl, yl)
}

func cachedCompress(ctx *registry.Context, key uint64, level int, data []byte) float64 {
	if ctx.Cache != nil {
		if v, ok := ctx.Cache.Load(key, ctx.CacheID()); ok {
			return float64(v)
		}
	}
	v := float64(compress(level, data))
	if ctx.Cache != nil {
		ctx.Cache.Store(key, ctx.CacheID(), float32(v))
	}
	return v
}

func cachedCompressPair(ctx *registry.Context, key uint64, level int, a, b []byte) float64 {
	if ctx.Cache != nil {
		if v, ok := ctx.Cache.Load(key, ctx.CacheID()); ok {
			return float64(v)
		}
	}
	v := float64(compressPair(level, a, b))
	if ctx.Cache != nil {
		ctx.Cache.Store(key, ctx.CacheID(), float32(v))
	}
	return v
}
