package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesKnownValues(t *testing.T) {
	cfg := Default()
	if cfg.Measures.Measure != "dist_levenshtein" {
		t.Fatalf("expected default measure dist_levenshtein, got %s", cfg.Measures.Measure)
	}
	if cfg.Float("dist_levenshtein", "cost_ins", -1) != 1.0 {
		t.Fatalf("expected default cost_ins 1.0")
	}
	if cfg.Int("dist_lee", "max_sym", -1) != 255 {
		t.Fatalf("expected default max_sym 255")
	}
	if cfg.String("dist_kernel", "kern", "") != "kern_wdegree" {
		t.Fatalf("expected default kern kern_wdegree")
	}
	if cfg.Bool("dist_kernel", "squared", false) != true {
		t.Fatalf("expected default squared true")
	}
}

func TestFallbackForUnknownMeasure(t *testing.T) {
	cfg := Default()
	if cfg.Float("dist_nonexistent", "cost_ins", 42) != 42 {
		t.Fatalf("expected fallback for unknown measure")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harry.yml")
	doc := `
measures:
  measure: dist_jarowinkler
  cache_size: 64
  dist_levenshtein:
    cost_ins: 2.5
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Measures.Measure != "dist_jarowinkler" {
		t.Fatalf("expected override, got %s", cfg.Measures.Measure)
	}
	if cfg.Measures.CacheSize != 64 {
		t.Fatalf("expected cache_size override, got %d", cfg.Measures.CacheSize)
	}
	if cfg.Float("dist_levenshtein", "cost_ins", -1) != 2.5 {
		t.Fatalf("expected cost_ins override")
	}
	// Untouched defaults should survive.
	if cfg.Float("dist_levenshtein", "cost_del", -1) != 1.0 {
		t.Fatalf("expected cost_del default to survive merge")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Measures.Measure != "dist_levenshtein" {
		t.Fatalf("expected defaults for missing file")
	}
}
