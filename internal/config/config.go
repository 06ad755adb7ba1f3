// Package config loads and saves run configuration for the EHC CLI as YAML
// with ${ENV_VAR} interpolation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ehcplan/ehcplan/internal/ehc"
)

// RunConfig is one EHC run's full configuration: which variant to run, its
// search knobs, where to persist results, and optional telemetry wiring.
type RunConfig struct {
	Variant         string        `yaml:"variant"`
	QMax            int           `yaml:"q_max"`
	DepthBound      int           `yaml:"depth_bound"`
	BacktrackBudget int           `yaml:"backtrack_budget"`
	TimeBudgetSec   int           `yaml:"time_budget_sec"`
	OutputDir       string        `yaml:"output_dir"`
	Metrics         MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls whether and where telemetry is pushed.
type MetricsConfig struct {
	Enabled        bool   `yaml:"enabled"`
	PushgatewayURL string `yaml:"pushgateway_url"`
	InfluxURL      string `yaml:"influx_url"`
	InfluxToken    string `yaml:"influx_token"` // supports ${ENV_VAR} interpolation
	InfluxOrg      string `yaml:"influx_org"`
	InfluxBucket   string `yaml:"influx_bucket"`
}

// DefaultConfig returns a RunConfig with spec.md §6's default knob values,
// metrics disabled (no network calls unless explicitly configured on).
func DefaultConfig() *RunConfig {
	return &RunConfig{
		Variant:         string(ehc.ClassicEHC),
		QMax:            ehc.DefaultQMax,
		DepthBound:      ehc.DefaultDepthBestFirst,
		BacktrackBudget: ehc.DefaultBacktrackBudget,
		TimeBudgetSec:   int(ehc.DefaultTimeBudget / time.Second),
		OutputDir:       "./runs",
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// TimeBudget converts TimeBudgetSec to a time.Duration.
func (c *RunConfig) TimeBudget() time.Duration {
	return time.Duration(c.TimeBudgetSec) * time.Second
}

// ToEHCConfig resolves a RunConfig into the ehc.Config a Driver consumes,
// starting from the named variant's canonical defaults and overriding with
// any knob the run config explicitly sets (non-zero values win).
func (c *RunConfig) ToEHCConfig() ehc.Config {
	cfg := ehc.VariantConfig(ehc.Variant(c.Variant))
	if c.QMax > 0 {
		cfg.QMax = c.QMax
	}
	if c.DepthBound > 0 {
		cfg.DepthBound = c.DepthBound
	}
	if c.BacktrackBudget > 0 {
		cfg.BacktrackBudget = c.BacktrackBudget
	}
	if c.TimeBudgetSec > 0 {
		cfg.TimeBudget = c.TimeBudget()
	}
	return cfg
}

// LoadConfig loads a RunConfig from a YAML file, falling back to defaults
// when path is empty or the file does not exist.
func LoadConfig(path string) (*RunConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path as YAML, creating parent directories.
func SaveConfig(cfg *RunConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfig returns a commented example config file.
func ExampleConfig() string {
	return `# EHC run configuration
# Priority: CLI flags > environment variables > config file > defaults

# Variant: classic_ehc, depthbound_ehc, episodic_ehc, adapted_ehc,
# db_adapted_ehc, guided_ehc, super_ehc, hb_ehc
variant: classic_ehc

# Queue size bound for best-first lookahead strategies (0 = use the
# variant's canonical default)
q_max: 0

# Depth bound for depth-bounded lookahead strategies (0 = use default)
depth_bound: 0

# Backtrack budget for the hb_ehc variant (0 = use default)
backtrack_budget: 0

# Wall-clock budget per run, in seconds (0 = use default of 60s)
time_budget_sec: 0

# Directory where per-run <run-id>.json record files are written
output_dir: ./runs

metrics:
  # Push expansion/heuristic/ordering counters to Prometheus and write a
  # solution point to InfluxDB. Disabled by default: no network calls.
  enabled: false
  pushgateway_url: http://localhost:9091
  influx_url: http://localhost:8086
  influx_token: ${INFLUX_TOKEN}
  influx_org: ehc
  influx_bucket: benchmarks
`
}
