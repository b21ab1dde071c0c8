package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sappo/libsimilarity/config"
)

// ConfigIntegrationSuite exercises Load end-to-end against a real file on
// disk, the way the teacher's helper-heavy suites (jsonbuilder, iplddecoders)
// drive a full round trip rather than a single pure-function case.
type ConfigIntegrationSuite struct {
	suite.Suite
	dir string
}

func TestConfigIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ConfigIntegrationSuite))
}

func (s *ConfigIntegrationSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigIntegrationSuite) writeYAML(name, contents string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func (s *ConfigIntegrationSuite) TestFullDocumentOverridesAndDefaultsCoexist() {
	path := s.writeYAML("harry.yml", `
input:
  decode_str: true
  soundex: true
measures:
  measure: dist_levenshtein
  granularity: tokens
  token_delim: " ,"
  num_threads: 4
  dist_levenshtein:
    cost_ins: 2.0
output:
  precision: 3
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.True(cfg.Input.DecodeStr)
	s.True(cfg.Input.Soundex)
	s.Equal("dist_levenshtein", cfg.Measures.Measure)
	s.Equal("tokens", cfg.Measures.Granularity)
	s.Equal(4, cfg.Measures.NumThreads)
	s.Equal(3, cfg.Output.Precision)

	s.Equal(2.0, cfg.Float("dist_levenshtein", "cost_ins", -1))
	// cost_del wasn't set in the file; it must still resolve to its
	// built-in default rather than zero-valuing the whole subsection.
	s.Equal(config.Default().Float("dist_levenshtein", "cost_del", -1), cfg.Float("dist_levenshtein", "cost_del", -1))
}

func (s *ConfigIntegrationSuite) TestMissingFileFallsBackToDefaults() {
	cfg, err := config.Load(filepath.Join(s.dir, "does-not-exist.yml"))
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}
