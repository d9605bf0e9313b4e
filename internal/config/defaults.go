package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	DefaultOutputFormat = "text"

	DefaultWorkers = 5

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultProviderRules covers hosts whose remote paths carry routing
// segments ahead of the owner
var DefaultProviderRules = []ProviderRule{
	// Azure DevOps ssh remotes look like v3/org/project/repo
	{Host: "ssh.dev.azure.com", SkipParts: 1},
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".giturl"
	}
	return filepath.Join(home, ".giturl")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   DefaultOutputFormat,
			TrimAuth: false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Batch: BatchConfig{
			Workers: DefaultWorkers,
		},
		Providers: DefaultProviderRules,
	}
}
