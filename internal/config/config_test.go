package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, DefaultWorkers, cfg.Batch.Workers)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Providers)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty format gets default", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
		assert.Equal(t, DefaultWorkers, cfg.Batch.Workers)
	})

	t.Run("json format accepted", func(t *testing.T) {
		cfg := &Config{Output: OutputConfig{Format: "json"}}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		cfg := &Config{Output: OutputConfig{Format: "xml"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty provider host rejected", func(t *testing.T) {
		cfg := &Config{Providers: []ProviderRule{{Host: "", SkipParts: 1}}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative skip rejected", func(t *testing.T) {
		cfg := &Config{Providers: []ProviderRule{{Host: "host.tld", SkipParts: -1}}}
		assert.Error(t, cfg.Validate())
	})
}

func TestSkipPartsFor(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 1, cfg.SkipPartsFor("ssh.dev.azure.com"))
	assert.Equal(t, 1, cfg.SkipPartsFor("SSH.DEV.AZURE.COM"))
	assert.Equal(t, 0, cfg.SkipPartsFor("github.com"))
}

func TestLoadWith(t *testing.T) {

	t.Run("defaults without config file", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath(t.TempDir())

		cfg, err := loadWith(v)
		require.NoError(t, err)
		assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
		assert.Equal(t, DefaultWorkers, cfg.Batch.Workers)
		assert.Equal(t, DefaultProviderRules, cfg.Providers)
	})

	t.Run("config file overrides", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte(`
output:
  format: json
batch:
  workers: 2
providers:
  - host: git.example.com
    skip_parts: 2
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644))

		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))

		cfg, err := loadWith(v)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, 2, cfg.Batch.Workers)
		assert.Equal(t, 2, cfg.SkipPartsFor("git.example.com"))
	})

	t.Run("invalid config file value", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("output:\n  format: xml\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644))

		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))

		_, err := loadWith(v)
		assert.Error(t, err)
	})
}
