// Package matrix implements the parallel driver that schedules pairwise
// measure comparisons over a rectangular (or, when symmetric,
// triangular) sub-range of an input string collection, per spec.md §4.6.
package matrix

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	concurrently "github.com/tejzpr/ordered-concurrently/v3"
	"k8s.io/klog/v2"

	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"
)

// cellResult is what a single comparison's WorkFunction hands back on the
// output channel.
type cellResult struct {
	I, J int
	Val  float64
}

// cellWork computes one matrix cell, mirroring the teacher's
// sigToEpochParser shape: a small value holding everything Run needs plus
// a completion callback for the caller's WaitGroup bookkeeping.
type cellWork struct {
	mctx *registry.Context
	x, y *hstring.S
	i, j int
	done func()
}

func (w cellWork) Run(_ context.Context) interface{} {
	defer w.done()
	return cellResult{I: w.i, J: w.j, Val: w.mctx.Compare(w.x, w.y)}
}

// Run computes every cell this view's (possibly split) range is
// responsible for, dispatching across numThreads worker goroutines via
// ordered-concurrently, and returns the populated view plus a RunID that
// correlates this run's log lines (and, if scraped, its CacheHitRate
// metric sample; ComparisonsTotal and RunDuration are labeled by measure
// only).
func Run(ctx context.Context, mctx *registry.Context, strs []*hstring.S, row, col Range, split Split) (*View, string, error) {
	runID := uuid.NewString()
	numThreads := mctx.Config.Measures.NumThreads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	view := NewView(row, col)
	cells := view.Cells()
	lo, hi := split.bounds(len(cells))
	cells = cells[lo:hi]

	klog.Infof("[%s] matrix run: measure=%s cells=%s threads=%d", runID, mctx.Name, humanize.Comma(int64(len(cells))), numThreads)
	startedAt := time.Now()

	workerInputChan := make(chan concurrently.WorkFunction, numThreads)
	waitExecuted := new(sync.WaitGroup)
	waitResultsReceived := new(sync.WaitGroup)
	numReceived := new(atomic.Int64)

	outputChan := concurrently.Process(
		ctx,
		workerInputChan,
		&concurrently.Options{PoolSize: numThreads, OutChannelBuffer: numThreads},
	)

	var firstErr error
	var errOnce sync.Once
	go func() {
		for result := range outputChan {
			switch v := result.Value.(type) {
			case cellResult:
				view.Set(v.I, v.J, float32(v.Val))
			default:
				errOnce.Do(func() {
					firstErr = fmt.Errorf("matrix: unexpected result type %T", result.Value)
				})
			}
			waitResultsReceived.Done()
			numReceived.Add(-1)
		}
	}()

	for _, c := range cells {
		waitExecuted.Add(1)
		waitResultsReceived.Add(1)
		numReceived.Add(1)
		workerInputChan <- cellWork{
			mctx: mctx,
			x:    strs[c.I],
			y:    strs[c.J],
			i:    c.I,
			j:    c.J,
			done: waitExecuted.Done,
		}
	}

	waitExecuted.Wait()
	close(workerInputChan)
	waitResultsReceived.Wait()

	elapsed := time.Since(startedAt)
	ComparisonsTotal.WithLabelValues(mctx.Name).Add(float64(len(cells)))
	RunDuration.WithLabelValues(mctx.Name).Observe(elapsed.Seconds())
	if mctx.Cache != nil {
		CacheHitRate.WithLabelValues(runID).Set(mctx.Cache.Stats().HitRate)
	}
	klog.Infof("[%s] matrix run finished: %s cells in %s", runID, humanize.Comma(int64(len(cells))), elapsed)

	if firstErr != nil {
		return nil, runID, firstErr
	}
	return view, runID, nil
}
