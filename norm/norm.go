// Package norm implements the length and kernel normalization strategies
// applied to raw measure output: none/min/max/avg length normalization
// (plain and weighted), and L2 kernel normalization backed by a value
// cache.
package norm

import (
	"fmt"
	"math"
	"strings"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/vcache"
)

// LengthNorm selects how a distance or similarity value is divided down by
// the operand strings' lengths.
type LengthNorm int

const (
	LengthNone LengthNorm = iota
	LengthMin
	LengthMax
	LengthAvg
)

// ParseLengthNorm maps a config string to a LengthNorm, defaulting to
// LengthNone (and reporting the fallback) on anything unrecognized -
// mirroring lnorm_get's "warn and use none" behavior.
func ParseLengthNorm(s string) (LengthNorm, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return LengthNone, nil
	case "min":
		return LengthMin, nil
	case "max":
		return LengthMax, nil
	case "avg":
		return LengthAvg, nil
	}
	return LengthNone, fmt.Errorf("norm: unknown length norm %q, using none", s)
}

// Length applies length normalization to d using the raw lengths of x and y.
func Length(n LengthNorm, d float64, x, y *hstring.S) float64 {
	switch n {
	case LengthMin:
		return d / math.Min(float64(x.Len), float64(y.Len))
	case LengthMax:
		return d / math.Max(float64(x.Len), float64(y.Len))
	case LengthAvg:
		return d / (0.5 * float64(x.Len+y.Len))
	default:
		return d
	}
}

// WeightedLength applies length normalization scaled by an extra weight w,
// used by Damerau-Levenshtein when all its per-operation costs are equal
// (w is then that common cost).
func WeightedLength(n LengthNorm, d, w float64, x, y *hstring.S) float64 {
	switch n {
	case LengthMin:
		return d / (w * math.Min(float64(x.Len), float64(y.Len)))
	case LengthMax:
		return d / (w * math.Max(float64(x.Len), float64(y.Len)))
	case LengthAvg:
		return d / (w * 0.5 * float64(x.Len+y.Len))
	default:
		return d
	}
}

// KernelNorm selects how a kernel value is rescaled relative to the
// self-similarity of its operands.
type KernelNorm int

const (
	KernelNone KernelNorm = iota
	KernelL2
)

// ParseKernelNorm maps a config string to a KernelNorm, defaulting to
// KernelNone on anything unrecognized.
func ParseKernelNorm(s string) (KernelNorm, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return KernelNone, nil
	case "l2":
		return KernelL2, nil
	}
	return KernelNone, fmt.Errorf("norm: unknown kernel norm %q, using none", s)
}

// IDNorm is the vcache subsystem id reserved for self-similarity lookups
// performed during kernel normalization, kept distinct from any measure's
// own cache partition.
const IDNorm = -1

// Kernel rescales k by the operands' self-similarity under kernel, caching
// the two self-similarity computations in cache under IDNorm so repeated
// rows/columns sharing a string don't recompute it.
func Kernel(n KernelNorm, cache *vcache.Cache, k float64, x, y *hstring.S, kernel func(a, b *hstring.S) float64) float64 {
	switch n {
	case KernelL2:
		xv := selfSim(cache, x, kernel)
		yv := selfSim(cache, y, kernel)
		return k / math.Sqrt(xv*yv)
	default:
		return k
	}
}

func selfSim(cache *vcache.Cache, s *hstring.S, kernel func(a, b *hstring.S) float64) float64 {
	key := s.Hash1()
	if cache != nil {
		if v, ok := cache.Load(key, IDNorm); ok {
			return float64(v)
		}
	}
	v := kernel(s, s)
	if cache != nil {
		cache.Store(key, IDNorm, float32(v))
	}
	return v
}
