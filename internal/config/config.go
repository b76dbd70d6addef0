// Package config holds all ladder configuration, layered from defaults,
// an optional YAML file, and LADDER_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full runtime configuration for the ladder binary.
// Keys are flat so YAML keys and LADDER_* environment variables map 1:1.
type Config struct {
	// Reference data. Empty paths fall back to the built-in role set and
	// rule tables.
	RolesPath string `koanf:"roles_path"`
	RulesPath string `koanf:"rules_path"`

	// Matcher thresholds.
	OverlapThreshold  float64 `koanf:"overlap_threshold"`
	KeywordConfidence float64 `koanf:"keyword_confidence"`
	SemanticThreshold float64 `koanf:"semantic_threshold"`

	// ModelDir enables the semantic fallback tier when non-empty.
	ModelDir string `koanf:"model_dir"`

	// Batch runner.
	Workers   int  `koanf:"workers"`    // 0 means runtime.NumCPU()
	BatchSize int  `koanf:"batch_size"` // titles per flush
	Dedupe    bool `koanf:"dedupe"`     // collapse identical raw titles per batch

	// Result destination: "stdout" or a file path.
	Output string `koanf:"output"`
	Pretty bool   `koanf:"pretty"`

	// MetricsAddr enables a prometheus listener when non-empty.
	MetricsAddr string `koanf:"metrics_addr"`

	LogLevel string `koanf:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		OverlapThreshold:  0.6,
		KeywordConfidence: 0.5,
		SemanticThreshold: 0.7,
		BatchSize:         500,
		Dedupe:            true,
		Output:            "stdout",
		LogLevel:          "info",
	}
}

// Load builds a Config by layering, low to high precedence:
//  1. Default()
//  2. YAML file named by LADDER_CONFIG, if set
//  3. environment variables with the LADDER_ prefix
//     (LADDER_OVERLAP_THRESHOLD -> overlap_threshold)
func Load() (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path := os.Getenv("LADDER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}

	// Keys stay flat: underscores are preserved to match the koanf tags.
	envProvider := env.Provider("LADDER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LADDER_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if c.OverlapThreshold <= 0 || c.OverlapThreshold > 1 {
		return errors.New("config: overlap_threshold must be in (0, 1]")
	}
	if c.KeywordConfidence < 0 || c.KeywordConfidence > 1 {
		return errors.New("config: keyword_confidence must be in [0, 1]")
	}
	if c.SemanticThreshold <= 0 || c.SemanticThreshold > 1 {
		return errors.New("config: semantic_threshold must be in (0, 1]")
	}
	if c.Workers < 0 {
		return errors.New("config: workers must be >= 0")
	}
	if c.BatchSize <= 0 {
		return errors.New("config: batch_size must be > 0")
	}
	if c.Output == "" {
		return errors.New("config: output must not be empty")
	}
	return nil
}
