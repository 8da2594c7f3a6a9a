// Package config handles loading and saving gcb configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the default generation parameters for gcb.
type Config struct {
	// Depth of the generated function call tree.
	Depth int `yaml:"depth"`

	// BranchProbability is the taken probability of generated conditional
	// branches, in [0,1].
	BranchProbability float64 `yaml:"branch_probability"`

	// Format of written artifacts: msgpack or json.
	Format string `yaml:"format"`

	// Output is the default artifact path; empty writes JSON to stdout.
	Output string `yaml:"output"`

	// InjectWorkload wires the shared arithmetic workload body into every
	// generated call block.
	InjectWorkload bool `yaml:"inject_workload"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Depth:             20,
		BranchProbability: 0.5,
		Format:            "msgpack",
		Output:            "",
		InjectWorkload:    false,
		Verbose:           false,
	}
}

// Load reads configuration, in priority order: the explicit path if given,
// .gcb.yaml in the working directory, ~/.config/gcb/config.yaml, then
// defaults. Environment variables override whatever was loaded.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	candidates := []string{}
	if path != "" {
		candidates = append(candidates, path)
	} else {
		candidates = append(candidates, ".gcb.yaml")
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, ".config", "gcb", "config.yaml"))
		}
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if path != "" {
				// An explicitly requested file must exist.
				return nil, fmt.Errorf("reading config %s: %w", candidate, err)
			}
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", candidate, err)
		}
		break
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from GCB_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("GCB_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Depth = n
		}
	}
	if v := os.Getenv("GCB_BRANCH_PROBABILITY"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BranchProbability = p
		}
	}
	if v := os.Getenv("GCB_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}

// Validate checks that the configuration is usable for generation.
func (c *Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be >= 1, got %d", c.Depth)
	}
	if c.BranchProbability < 0 || c.BranchProbability > 1 {
		return fmt.Errorf("branch_probability must be in [0,1], got %v", c.BranchProbability)
	}
	if c.Format != "msgpack" && c.Format != "json" {
		return fmt.Errorf("format must be msgpack or json, got %q", c.Format)
	}
	return nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
