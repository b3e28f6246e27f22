// Package config holds construction-time configuration for frontiers:
// objective declarations, capacity bounds, and dominance tolerances.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// FrontierConfig contains configuration options for a frontier. A frontier is
// constructed once per optimization run with a fixed objective set.
type FrontierConfig struct {
	// Objective declarations
	Objectives []string                  `json:"objectives" yaml:"objectives" validate:"required,min=1,unique"`
	Directions map[string]core.Direction `json:"directions" yaml:"directions" validate:"required,dive,oneof=maximize minimize"`

	// Reference point for hypervolume computation. When nil, one is derived
	// from the first population via AutoReferencePoint.
	ReferencePoint core.ObjectiveVector `json:"reference_point,omitempty" yaml:"reference_point,omitempty"`

	// Capacity bounds
	MaxFrontierSize int `json:"max_frontier_size" yaml:"max_frontier_size" validate:"min=1"` // Default: 100
	MaxArchiveSize  int `json:"max_archive_size" yaml:"max_archive_size" validate:"min=1"`   // Default: 500

	// Tolerances
	Epsilon         float64 `json:"epsilon" yaml:"epsilon" validate:"gte=0"`                  // Default: 0.01, for noisy dominance
	ReferenceMargin float64 `json:"reference_margin" yaml:"reference_margin" validate:"gte=0"` // Default: 0.1
}

// DefaultFrontierConfig returns the default configuration for a frontier.
func DefaultFrontierConfig() *FrontierConfig {
	return &FrontierConfig{
		MaxFrontierSize: 100,
		MaxArchiveSize:  500,
		Epsilon:         0.01,
		ReferenceMargin: 0.1,
	}
}

// WithObjectives sets the declared objectives, defaulting every direction to
// maximize unless overridden via WithDirection.
func (c *FrontierConfig) WithObjectives(names ...string) *FrontierConfig {
	c.Objectives = append([]string(nil), names...)
	if c.Directions == nil {
		c.Directions = make(map[string]core.Direction, len(names))
	}
	for _, name := range names {
		if _, ok := c.Directions[name]; !ok {
			c.Directions[name] = core.Maximize
		}
	}
	return c
}

// WithDirection overrides the direction of one declared objective.
func (c *FrontierConfig) WithDirection(name string, d core.Direction) *FrontierConfig {
	if c.Directions == nil {
		c.Directions = make(map[string]core.Direction)
	}
	c.Directions[name] = d
	return c
}

// Validate checks the structural validity of the configuration, including the
// cross-field invariant that every declared objective has a direction.
func (c *FrontierConfig) Validate() error {
	v, err := NewValidator()
	if err != nil {
		return err
	}
	return v.ValidateConfig(c)
}

// LoadFromFile reads a FrontierConfig from a YAML file, applies defaults for
// unset capacity/tolerance fields, and validates the result.
func LoadFromFile(path string) (*FrontierConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to read config file")
	}

	cfg := DefaultFrontierConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
