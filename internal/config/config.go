package config

import (
	"fmt"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Output    OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging   LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Batch     BatchConfig    `mapstructure:"batch" yaml:"batch"`
	Providers []ProviderRule `mapstructure:"providers" yaml:"providers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format"` // "text" or "json"
	TrimAuth bool   `mapstructure:"trim_auth" yaml:"trim_auth"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// BatchConfig contains settings for batch parsing
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// ProviderRule is a per-host parsing convention. Hosts whose remote paths
// start with routing segments (Azure DevOps ssh remotes start with "v3/")
// declare how many leading segments to skip before decomposition.
type ProviderRule struct {
	Host      string `mapstructure:"host" yaml:"host"`
	SkipParts int    `mapstructure:"skip_parts" yaml:"skip_parts"`
}

// Validate validates the configuration and applies defaults for invalid values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "":
		c.Output.Format = DefaultOutputFormat
	case "text", "json":
	default:
		return fmt.Errorf("invalid output.format %q: must be \"text\" or \"json\"", c.Output.Format)
	}

	if c.Batch.Workers < 1 {
		c.Batch.Workers = DefaultWorkers
	}

	for i, rule := range c.Providers {
		if rule.Host == "" {
			return fmt.Errorf("providers[%d]: host must not be empty", i)
		}
		if rule.SkipParts < 0 {
			return fmt.Errorf("providers[%d]: skip_parts must not be negative", i)
		}
	}

	return nil
}

// SkipPartsFor returns the configured skip count for a host, or 0 when the
// host has no provider rule
func (c *Config) SkipPartsFor(host string) int {
	for _, rule := range c.Providers {
		if strings.EqualFold(rule.Host, host) {
			return rule.SkipParts
		}
	}
	return 0
}
