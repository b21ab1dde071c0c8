package memo

import (
	"context"
	"testing"
	"time"

	"github.com/sappo/libsimilarity/hstring"
)

func TestPutGetRoundTrip(t *testing.T) {
	m, err := New(context.Background(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	plan := &hstring.PreprocessPlan{Granularity: hstring.Byte, ReverseStr: true}
	fp := PlanFingerprint(plan)

	raw := []byte("hello")
	s := hstring.New(raw)
	if err := s.Preprocess(plan); err != nil {
		t.Fatal(err)
	}

	if err := m.Put(raw, fp, s); err != nil {
		t.Fatal(err)
	}

	got, ok := m.Get(raw, fp)
	if !ok {
		t.Fatal("expected memo hit")
	}
	if got.Len != s.Len || string(got.Bytes) != string(s.Bytes) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestGetMissOnUnseenKey(t *testing.T) {
	m, err := New(context.Background(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Get([]byte("never stored"), 0); ok {
		t.Fatal("expected miss")
	}
}

func TestPlanFingerprintDistinguishesPlans(t *testing.T) {
	a := PlanFingerprint(&hstring.PreprocessPlan{Granularity: hstring.Byte})
	b := PlanFingerprint(&hstring.PreprocessPlan{Granularity: hstring.Byte, ReverseStr: true})
	if a == b {
		t.Fatal("expected distinct fingerprints for distinct plans")
	}
}
