// Package config holds repo-wide constants, the build Version, and the
// YAML-driven configuration for the kośa builder, plus the package-level
// structured logger every component writes through. Grounded on the
// teacher's internal/config package (constants + Version) generalized with
// a YAML config struct in the style of czcorpus-vert-tagextract's
// configuration loading.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Version is the current engine version.
var Version = "0.1.0"

// Log is the package-level structured logger every component writes
// through, in place of the teacher's ad hoc fmt.Fprintln(os.Stderr, ...)
// calls. Console-formatted by default; callers that want JSON output can
// reassign it.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// Recognized dhātupāṭha/kośa input file extensions.
var SourceFileExtensions = []string{".csv", ".tsv"}

// KoshaConfig is the YAML-loadable configuration for the kośa builder
// CLI, covering the --input-dir/--dhatupatha/--output-dir/--num-dhatus/
// --filters surface named in spec.md §6.
type KoshaConfig struct {
	InputDir    string   `yaml:"inputDir"`
	Dhatupatha  string   `yaml:"dhatupatha"`
	OutputDir   string   `yaml:"outputDir"`
	NumDhatus   int      `yaml:"numDhatus"`
	Filters     []string `yaml:"filters"`
	NumWorkers  int      `yaml:"numWorkers"`
}

// DefaultKoshaConfig returns a KoshaConfig with sane defaults: all filters
// enabled, one worker per CPU.
func DefaultKoshaConfig() KoshaConfig {
	return KoshaConfig{
		Filters:    []string{"k", "t", "b", "a"},
		NumWorkers: 0, // 0 means "use runtime.NumCPU()"; resolved by the caller.
	}
}

// LoadKoshaConfig reads and parses a YAML kośa builder config file,
// overlaying it on DefaultKoshaConfig.
func LoadKoshaConfig(path string) (KoshaConfig, error) {
	cfg := DefaultKoshaConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading kosha config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing kosha config %s: %w", path, err)
	}
	return cfg, nil
}
