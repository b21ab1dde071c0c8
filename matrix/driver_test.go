package matrix

import (
	"context"
	"testing"
	"time"

	"github.com/sappo/libsimilarity/config"
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/registry"

	_ "github.com/sappo/libsimilarity/measures"
)

func loadStrs(t *testing.T, items []string) []*hstring.S {
	t.Helper()
	strs, err := hstring.LoadAll(hstring.NewSliceLoader(items), &hstring.PreprocessPlan{Granularity: hstring.Byte})
	if err != nil {
		t.Fatal(err)
	}
	return strs
}

func TestRunSymmetricMatrixIsConsistentWithDirectCompare(t *testing.T) {
	strs := loadStrs(t, []string{"abba", "babb", "cabb"})
	cfg := config.Default()
	mctx, err := registry.New("dist_hamming", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	full := FullRange(len(strs))
	view, runID, err := Run(context.Background(), mctx, strs, full, full, NoSplit)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	for i := 0; i < len(strs); i++ {
		for j := 0; j < len(strs); j++ {
			want := mctx.Compare(strs[i], strs[j])
			got := view.Get(i, j)
			if float64(got) != want {
				t.Fatalf("cell (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestRunRespectsSplit(t *testing.T) {
	strs := loadStrs(t, []string{"a", "b", "c", "d"})
	cfg := config.Default()
	mctx, err := registry.New("dist_hamming", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	full := FullRange(len(strs))
	total := NewView(full, full).Cells()

	split := Split{Blocks: 2, ID: 0}
	view, _, err := Run(context.Background(), mctx, strs, full, full, split)
	if err != nil {
		t.Fatal(err)
	}

	lo, hi := split.bounds(len(total))
	for idx, c := range total {
		if idx >= lo && idx < hi {
			continue
		}
		if got := view.Get(c.I, c.J); got != 0 {
			t.Fatalf("cell %+v outside split %v should be untouched, got %v", c, split, got)
		}
	}
}

func TestRunAsymmetricRange(t *testing.T) {
	strs := loadStrs(t, []string{"aa", "bb", "cc", "dd"})
	cfg := config.Default()
	mctx, err := registry.New("dist_hamming", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	row := Range{0, 2}
	col := Range{2, 4}
	view, _, err := Run(context.Background(), mctx, strs, row, col, NoSplit)
	if err != nil {
		t.Fatal(err)
	}
	if view.Symmetric() {
		t.Fatal("expected asymmetric view")
	}
	want := mctx.Compare(strs[0], strs[2])
	if float64(view.Get(0, 2)) != want {
		t.Fatalf("got %v, want %v", view.Get(0, 2), want)
	}
}

func TestBenchmarkReportsComparisons(t *testing.T) {
	strs := loadStrs(t, []string{"abba", "babb", "cabb", "dabb"})
	cfg := config.Default()
	mctx, err := registry.New("dist_hamming", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	res := Benchmark(mctx, strs, 20*time.Millisecond)
	if res.Comparisons <= 0 {
		t.Fatalf("expected at least one comparison, got %d", res.Comparisons)
	}
	if res.Measure != "dist_hamming" {
		t.Fatalf("got measure %q", res.Measure)
	}
}
