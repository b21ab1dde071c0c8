package matrix

import (
	"math/rand"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"k8s.io/klog/v2"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

// throughput remembers, per measure name, the last observed
// comparisons-per-second figure for a short window, so that a later
// benchmark invocation within one process also reports the previous
// reading (PriorPerSecond) next to its own freshly measured rate
// (spec.md's benchmark mode is silent on this; it's a CLI-facing
// convenience, not a core semantic).
var throughput = ttlcache.New[string, float64](
	ttlcache.WithTTL[string, float64](5 * time.Minute),
)

func init() {
	go throughput.Start()
}

// BenchmarkResult is what Benchmark reports: the comparisons completed
// within the wall-clock budget and the derived rate.
type BenchmarkResult struct {
	Measure         string
	Comparisons     int64
	Elapsed         time.Duration
	PerSecond       float64
	PriorPerSecond  float64
	HadPriorReading bool
}

// Benchmark runs mctx.Compare over randomly chosen pairs from strs for a
// wall-clock budget, stopping at the next cell boundary after the budget
// expires and reporting the count (spec.md §4.6 "Benchmark mode").
// Cancellation is coarse by design: only polled between cells.
func Benchmark(mctx *registry.Context, strs []*hstring.S, budget time.Duration) BenchmarkResult {
	var prior float64
	var hadPrior bool
	if item := throughput.Get(mctx.Name); item != nil {
		prior = item.Value()
		hadPrior = true
	}

	n := len(strs)
	result := BenchmarkResult{Measure: mctx.Name, PriorPerSecond: prior, HadPriorReading: hadPrior}
	if n == 0 {
		return result
	}

	rng := rand.New(rand.NewSource(0xc0ffee))
	deadline := time.Now().Add(budget)
	start := time.Now()

	var count int64
	for {
		if time.Now().After(deadline) {
			break
		}
		i, j := rng.Intn(n), rng.Intn(n)
		_ = mctx.Compare(strs[i], strs[j])
		count++
	}

	elapsed := time.Since(start)
	result.Comparisons = count
	result.Elapsed = elapsed
	if elapsed > 0 {
		result.PerSecond = float64(count) / elapsed.Seconds()
	}

	throughput.Set(mctx.Name, result.PerSecond, ttlcache.DefaultTTL)
	ComparisonsTotal.WithLabelValues(mctx.Name).Add(float64(count))
	klog.Infof("benchmark %s: %d comparisons in %s (%.1f/s)", mctx.Name, count, elapsed, result.PerSecond)
	return result
}
