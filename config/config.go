// Package config implements the hierarchical, dotted-key configuration
// surface: a YAML document with fixed top-level sections
// (input, measures, output) plus free-form per-measure subsections
// (measures.<name>.<key>), backed by a defaults table so any key the
// document omits still resolves to a sane value.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the root configuration document, intended to be provided by a
// YAML file and consulted by every stage of a run: loading, preprocessing,
// measure dispatch, and output.
type Config struct {
	Input    Input    `yaml:"input"`
	Measures Measures `yaml:"measures"`
	Output   Output   `yaml:"output"`
}

// Input configures string loading and preprocessing.
type Input struct {
	Format        string `yaml:"input_format"`
	ChunkSize     int    `yaml:"chunk_size"`
	DecodeStr     bool   `yaml:"decode_str"`
	FastaRegex    string `yaml:"fasta_regex"`
	LinesRegex    string `yaml:"lines_regex"`
	ReverseStr    bool   `yaml:"reverse_str"`
	StoptokenFile string `yaml:"stoptoken_file"`
	Soundex       bool   `yaml:"soundex"`
}

// Measures configures the similarity measure dispatch and the per-measure
// parameter subsections. Params captures every "measures.<name>.*" group
// the document defines, keyed by measure name.
type Measures struct {
	Measure     string `yaml:"measure"`
	Granularity string `yaml:"granularity"`
	TokenDelim  string `yaml:"token_delim"`
	NumThreads  int    `yaml:"num_threads"`
	CacheSize   int    `yaml:"cache_size"`
	GlobalCache bool   `yaml:"global_cache"`
	ColRange    string `yaml:"col_range"`
	RowRange    string `yaml:"row_range"`
	Split       string `yaml:"split"`

	Params map[string]map[string]interface{} `yaml:",inline"`
}

// Output configures result formatting and destination.
type Output struct {
	Format      string `yaml:"output_format"`
	Precision   int    `yaml:"precision"`
	Separator   string `yaml:"separator"`
	SaveIndices bool   `yaml:"save_indices"`
	SaveLabels  bool   `yaml:"save_labels"`
	SaveSources bool   `yaml:"save_sources"`
	Compress    bool   `yaml:"compress"`
}

// Default returns a Config populated entirely from defaults, mirroring
// hconfig.c's defaults[] table.
func Default() *Config {
	return &Config{
		Input: Input{
			Format:     "lines",
			ChunkSize:  256,
			FastaRegex: ` (\+|-)?[0-9]+`,
			LinesRegex: `^(\+|-)?[0-9]+`,
		},
		Measures: Measures{
			Measure:     "dist_levenshtein",
			Granularity: "bytes",
			TokenDelim:  " %0a%0d",
			CacheSize:   256,
			Params: map[string]map[string]interface{}{
				"dist_hamming":     {"norm": "none"},
				"dist_levenshtein": {"norm": "none", "cost_ins": 1.0, "cost_del": 1.0, "cost_sub": 1.0},
				"dist_damerau":     {"norm": "none", "cost_ins": 1.0, "cost_del": 1.0, "cost_sub": 1.0, "cost_tra": 1.0},
				"dist_osa":         {"norm": "none", "cost_ins": 1.0, "cost_del": 1.0, "cost_sub": 1.0, "cost_tra": 1.0},
				"dist_jarowinkler": {"scaling": 0.1},
				"dist_lee":         {"min_sym": 0, "max_sym": 255},
				"dist_compression": {"level": 9},
				"dist_bag":         {"norm": "none"},
				"dist_kernel":      {"kern": "kern_wdegree", "norm": "none", "squared": true},
				"kern_wdegree":     {"degree": 3, "shift": 0, "norm": "none"},
				"kern_distance":    {"dist": "dist_bag", "type": "linear", "gamma": 1.0, "degree": 1.0, "norm": "none"},
				"kern_subsequence": {"length": 3, "lambda": 0.1, "norm": "none"},
				"kern_spectrum":    {"length": 3, "norm": "none"},
				"sim_coefficient":  {"matching": "bin"},
			},
		},
		Output: Output{
			Format:    "text",
			Separator: ",",
		},
	}
}

// Load reads a YAML configuration file and fills in anything it omits
// with defaults. A missing file is not an error - it is treated as an
// empty document and filled with defaults entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	// yaml.v2 decodes each "measures.<name>" inline subsection into a
	// brand new map, replacing rather than merging with what Default()
	// put there. Backfill any key the document's subsection omitted, so
	// overriding one parameter doesn't silently zero out its siblings.
	for name, defParams := range cfg.Measures.Params {
		params, ok := loaded.Measures.Params[name]
		if !ok {
			loaded.Measures.Params[name] = defParams
			continue
		}
		for k, v := range defParams {
			if _, ok := params[k]; !ok {
				params[k] = v
			}
		}
	}
	return loaded, nil
}

// MeasureParam looks up a per-measure setting by dotted path
// "measures.<name>.<key>", falling back to ok=false when neither the
// document nor the defaults define it.
func (c *Config) MeasureParam(name, key string) (interface{}, bool) {
	section, ok := c.Measures.Params[name]
	if !ok {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// Float resolves a per-measure float parameter, or fallback if unset or
// of the wrong type.
func (c *Config) Float(name, key string, fallback float64) float64 {
	v, ok := c.MeasureParam(name, key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return fallback
	}
}

// Int resolves a per-measure integer parameter, or fallback if unset or
// of the wrong type.
func (c *Config) Int(name, key string, fallback int) int {
	v, ok := c.MeasureParam(name, key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// String resolves a per-measure string parameter, or fallback if unset or
// of the wrong type.
func (c *Config) String(name, key string, fallback string) string {
	v, ok := c.MeasureParam(name, key)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// Bool resolves a per-measure boolean parameter, or fallback if unset or
// of the wrong type.
func (c *Config) Bool(name, key string, fallback bool) bool {
	v, ok := c.MeasureParam(name, key)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}
