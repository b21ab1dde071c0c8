package hstring

// Record is one raw string produced by a Loader, before construction and
// preprocessing.
type Record struct {
	Bytes    []byte
	Src      string
	Label    float64
	HasLabel bool
}

// Loader is a finite producer of raw string records, the collaborator
// spec.md §6 calls the "string loader". Concrete I/O adapters (text,
// fasta, stdin) live outside this module; Loader is the seam they plug
// into.
type Loader interface {
	// Next returns the next record, or ok=false once exhausted.
	Next() (rec Record, ok bool, err error)
}

// SliceLoader is an in-memory Loader over a fixed slice of raw strings,
// used by tests and benchmarks.
type SliceLoader struct {
	items []Record
	pos   int
}

// NewSliceLoader wraps plain strings with no src/label metadata.
func NewSliceLoader(items []string) *SliceLoader {
	recs := make([]Record, len(items))
	for i, s := range items {
		recs[i] = Record{Bytes: []byte(s)}
	}
	return &SliceLoader{items: recs}
}

// NewSliceLoaderRecords wraps fully-populated records.
func NewSliceLoaderRecords(items []Record) *SliceLoader {
	return &SliceLoader{items: items}
}

func (l *SliceLoader) Next() (Record, bool, error) {
	if l.pos >= len(l.items) {
		return Record{}, false, nil
	}
	rec := l.items[l.pos]
	l.pos++
	return rec, true, nil
}

// LoadAll drains a Loader into preprocessed strings.
func LoadAll(l Loader, plan *PreprocessPlan) ([]*S, error) {
	var out []*S
	for {
		rec, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		s := NewLabeled(rec.Bytes, rec.Src, rec.Label, rec.HasLabel)
		if err := s.Preprocess(plan); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
