// Package config loads the analysis configuration: file locations, cuts,
// ntuple tree names, vertex-fit settings, branching ratios and per-mode
// decay declarations.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/decibelcooper/b2jpsieta/decay"
	"github.com/decibelcooper/b2jpsieta/modes"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Locations       Locations             `yaml:"locations"`
	NumBB           float64               `yaml:"num_bb"`
	NGen            int                   `yaml:"n_gen"`
	BranchingRatios modes.Ratios          `yaml:"branching_ratios"`
	Cuts            map[string]string     `yaml:"cuts"`
	Trees           map[string]string     `yaml:"trees"`
	Vertex          Vertex                `yaml:"vertex"`
	Modes           map[string]ModeConfig `yaml:"modes"`
}

type Locations struct {
	Merged string `yaml:"merged"`
	Tables string `yaml:"tables"`
}

// Vertex configures the signal-side vertex fit and the tag-side vertex.
type Vertex struct {
	ConfLevel     float64 `yaml:"conf_level"`
	Constraint    string  `yaml:"constraint"`
	TagConstraint string  `yaml:"tag_constraint"`
	TagConfLevel  float64 `yaml:"tag_conf_level"`
}

type ModeConfig struct {
	SubDecays []string `yaml:"sub_decays"`
}

func base() Config {
	return Config{
		BranchingRatios: modes.DefaultRatios(),
		Vertex: Vertex{
			Constraint:    "iptube",
			TagConstraint: "breco",
			TagConfLevel:  0.001,
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their built-in values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.NGen <= 0 {
		return fmt.Errorf("%w: n_gen must be positive, got %d", ErrInvalidConfig, cfg.NGen)
	}
	if cfg.NumBB <= 0 {
		return fmt.Errorf("%w: num_bb must be positive, got %g", ErrInvalidConfig, cfg.NumBB)
	}
	for name := range cfg.Modes {
		m, err := modes.ParseMode(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if _, err := cfg.Chain(m); err != nil {
			return fmt.Errorf("%w: mode %s: %v", ErrInvalidConfig, m, err)
		}
	}
	return nil
}

// SubDecays returns the decay declarations configured for a mode, falling
// back to the mode's standard declarations.
func (cfg *Config) SubDecays(m modes.Mode) []string {
	if mc, ok := cfg.Modes[string(m)]; ok && len(mc.SubDecays) > 0 {
		return mc.SubDecays
	}
	return m.SubDecays()
}

// Chain builds and validates the decay chain of a mode.
func (cfg *Config) Chain(m modes.Mode) (*decay.Chain, error) {
	c, err := decay.NewChain(cfg.SubDecays(m))
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MergedFile returns the merged ntuple file of a mode.
func (cfg *Config) MergedFile(m modes.Mode) string {
	return filepath.Join(cfg.Locations.Merged, string(m)+".root")
}
