package registry

import (
	"testing"

	"github.com/sappo/libsimilarity/config"
	"github.com/sappo/libsimilarity/hstring"
)

func init() {
	Register("dist_probe", func(ctx *Context) {
		ctx.Opts.CostIns = 1
	}, func(ctx *Context, x, y *hstring.S) float64 {
		return float64(x.Len + y.Len)
	})
	Register("dist_probe", func(ctx *Context) {}, func(ctx *Context, x, y *hstring.S) float64 {
		return 0
	}) // second registration never matched by exact name below; exercises tie order
}

func TestMatchFullName(t *testing.T) {
	idx, ok := Match("dist_probe")
	if !ok || idx != 0 {
		t.Fatalf("expected first registration to win, got idx=%d ok=%v", idx, ok)
	}
}

func TestMatchSuffix(t *testing.T) {
	idx, ok := Match("probe")
	if !ok || idx != 0 {
		t.Fatalf("expected suffix match to first registration, got idx=%d ok=%v", idx, ok)
	}
}

func TestMatchUnknown(t *testing.T) {
	if _, ok := Match("nonexistent_measure"); ok {
		t.Fatalf("expected no match")
	}
}

func TestNewAndCompare(t *testing.T) {
	cfg := config.Default()
	ctx, err := New("dist_probe", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Opts.CostIns != 1 {
		t.Fatalf("expected Configure to run, CostIns=1")
	}

	x := hstring.New([]byte("ab"))
	y := hstring.New([]byte("abc"))
	if got := ctx.Compare(x, y); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestListGlob(t *testing.T) {
	names := List("dist_*")
	found := false
	for _, n := range names {
		if n == "dist_probe" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dist_probe in glob results, got %v", names)
	}
}
