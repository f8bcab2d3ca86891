package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""), nil)
	require.NoError(t, err)

	assert.Equal(t, FormatAuto, cfg.Format)
	assert.False(t, cfg.NormalizeNFC)
	assert.False(t, cfg.JSON)
	assert.False(t, cfg.Strict)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "format: html\nnormalize_nfc: true\njson: true\nstrict: true\nworkers: 2\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, cfg.Format)
	assert.True(t, cfg.NormalizeNFC)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("MDTEXT_WORKERS", "3")
	t.Setenv("MDTEXT_FORMAT", "markdown")

	cfg, err := LoadConfig(writeConfig(t, "format: html\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, FormatMarkdown, cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadConfigFlags(t *testing.T) {
	flags := pflag.NewFlagSet("mdtext", pflag.ContinueOnError)
	flags.String("format", FormatAuto, "")
	flags.Bool("nfc", false, "")
	flags.Int("workers", 1, "")
	require.NoError(t, flags.Parse([]string{"--format=markdown", "--nfc"}))

	cfg, err := LoadConfig(writeConfig(t, "format: html\nworkers: 4\n"), flags)
	require.NoError(t, err)

	assert.Equal(t, FormatMarkdown, cfg.Format)
	assert.True(t, cfg.NormalizeNFC)
	assert.Equal(t, 4, cfg.Workers, "unset flags do not override the file")
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "format: pdf\n"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("invalid workers", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "workers: 0\n"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid workers")
	})
}
