// Package registry implements the measure registry: a static table of
// (name, configure, compare) triples, case-insensitive full-name or
// suffix-after-underscore matching, and the per-comparison Context that
// carries a measure's resolved options, its value cache, and a dispatch
// table for measures that call another measure internally (kern_distance,
// dist_kernel) without a name lookup on the hot path.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ryanuber/go-glob"

	"github.com/sappo/libsimilarity/config"
	"github.com/sappo/libsimilarity/hstring"
	"github.com/sappo/libsimilarity/norm"
	"github.com/sappo/libsimilarity/vcache"
)

// ConfigureFunc initializes a Context's Opts from its Config section
// before any Compare call is made.
type ConfigureFunc func(ctx *Context)

// CompareFunc computes the similarity or distance between two strings,
// with the measure's own configured normalization already applied.
type CompareFunc func(ctx *Context, x, y *hstring.S) float64

// entry is one measure registration: its canonical name plus the function
// pair measures_func_t pairs in the original.
type entry struct {
	name      string
	configure ConfigureFunc
	compare   CompareFunc
}

var table []entry

// Register adds a measure under name. Aliases are registered by calling
// Register multiple times with the same configure/compare pair, exactly
// as the original's static func[] table lists "dist_edit" alongside
// "dist_levenshtein".
func Register(name string, configure ConfigureFunc, compare CompareFunc) {
	table = append(table, entry{name: name, configure: configure, compare: compare})
}

// Match resolves name to a table index using exact case-insensitive
// matching against the full name, then against the suffix after the
// first underscore (so "levenshtein" matches "dist_levenshtein"). Full
// names are tried before suffixes, and the first registration wins ties.
func Match(name string) (int, bool) {
	for i, e := range table {
		if strings.EqualFold(e.name, name) {
			return i, true
		}
	}
	for i, e := range table {
		if idx := strings.IndexByte(e.name, '_'); idx >= 0 {
			if strings.EqualFold(e.name[idx+1:], name) {
				return i, true
			}
		}
	}
	return -1, false
}

// List returns every registered measure name matching a shell-style glob
// pattern ("*" meaning everything), sorted for stable output.
func List(pattern string) []string {
	if pattern == "" {
		pattern = "*"
	}
	var names []string
	for _, e := range table {
		if glob.Glob(pattern, e.name) {
			names = append(names, e.name)
		}
	}
	sort.Strings(names)
	return names
}

// Opts is the flat bag of every tunable a measure or kernel might consult,
// mirroring the original's single measures_opts_t struct: each concrete
// measure reads only the handful of fields it cares about.
type Opts struct {
	LengthNorm norm.LengthNorm
	KernelNorm norm.KernelNorm

	// Weighted edit distance costs (Levenshtein, Damerau, OSA).
	CostIns float64
	CostDel float64
	CostSub float64
	CostTra float64

	// dist_jarowinkler
	Scaling float64

	// dist_lee
	MinSym int
	MaxSym int

	// dist_compression
	Level int

	// sim_coefficient
	Binary bool

	// kern_wdegree
	Degree int
	Shift  int

	// kern_spectrum, kern_subsequence
	Length int
	Lambda float64

	// kern_distance / dist_kernel substitution parameters
	Subst   SubstType
	Gamma   float64
	Power   float64
	Squared bool

	// DistName / KernName record which other measure a wrapping measure
	// (kern_distance.dist, dist_kernel.kern) delegates to; Inner is
	// resolved from it once at configure time.
	DistName string
	KernName string
}

// SubstType selects the distance-substitution form used by kern_distance.
type SubstType int

const (
	SubstLinear SubstType = iota
	SubstPoly
	SubstNeg
	SubstRBF
)

// Context is the per-run handle a measure's configure/compare functions
// receive: its resolved name, its slot in the dispatch table, shared
// config and cache, and generic options. Nested measures (kern_distance
// wrapping a dist_* measure, dist_kernel wrapping a kern_* measure) resolve
// their inner CompareFunc once during Configure and store it directly
// rather than re-running Match on every comparison.
type Context struct {
	Config *config.Config
	Cache  *vcache.Cache

	Name string
	idx  int

	Opts Opts

	// Inner is populated by measures that wrap another measure by name
	// (dist_kernel.kern, kern_distance.dist): its Compare function,
	// resolved once at configure time.
	Inner CompareFunc

	// GlobalCache controls whether comparisons are partitioned by
	// measure identity (idx) or share one global cache subsystem id.
	GlobalCache bool

	Verbose bool
}

// New resolves name against the registry and builds a ready-to-use
// Context: its cache sized from cfg.Measures.CacheSize, and its Configure
// function already invoked.
func New(name string, cfg *config.Config, cache *vcache.Cache) (*Context, error) {
	idx, ok := Match(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown measure %q", name)
	}
	if cache == nil {
		cache = vcache.New(cfg.Measures.CacheSize)
	}
	ctx := &Context{
		Config:      cfg,
		Cache:       cache,
		Name:        table[idx].name,
		idx:         idx,
		GlobalCache: cfg.Measures.GlobalCache,
	}
	table[idx].configure(ctx)
	return ctx, nil
}

// CacheID returns the subsystem id this context's comparisons should use
// to partition the shared value cache: a fixed id when GlobalCache is set
// (so unrelated measures deliberately collide and share entries), or the
// measure's own table slot otherwise.
func (ctx *Context) CacheID() int {
	if ctx.GlobalCache {
		return 0
	}
	return ctx.idx
}

// Compare runs the resolved measure's comparison function.
func (ctx *Context) Compare(x, y *hstring.S) float64 {
	return table[ctx.idx].compare(ctx, x, y)
}

// ResolveInner looks up another measure by name and wires its compare
// function (bound to a fresh nested Context sharing this context's config
// and cache) into ctx.Inner, for measures that wrap another measure.
func (ctx *Context) ResolveInner(name string) error {
	inner, err := New(name, ctx.Config, ctx.Cache)
	if err != nil {
		return err
	}
	ctx.Inner = inner.Compare
	return nil
}
