package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/acproxycam/acproxycam/internal/config"
)

// isolate points the user config dir at a temp dir and moves the working
// directory away from any acproxycam.yaml lying around in the repo.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Chdir(t.TempDir())
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	var notFound viper.ConfigFileNotFoundError
	require.True(t, errors.As(err, &notFound), "expected ConfigFileNotFoundError, got %v", err)

	assert.Equal(t, "en", c.Language)
	assert.Equal(t, cfg.ModeAuto, c.Mode)
	assert.True(t, c.Color)
	assert.Equal(t, "dot", c.Spinner)
	assert.Equal(t, "196", c.Theme.Error)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "language: de\nmode: headless\ntheme:\n  error: \"#ff0000\"\n"
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o600))

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, "de", c.Language)
	assert.Equal(t, cfg.ModeHeadless, c.Mode)
	assert.Equal(t, "#ff0000", c.Theme.Error)
	// untouched keys keep their defaults
	assert.Equal(t, "214", c.Theme.Warning)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mode: rich\n"), 0o600))
	t.Setenv("ACPROXYCAM_MODE", "headless")
	t.Setenv("ACPROXYCAM_THEME_INFO", "33")

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, cfg.ModeHeadless, c.Mode)
	assert.Equal(t, "33", c.Theme.Info)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("ACPROXYCAM_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	require.NoError(t, cmd.Flags().Set("language", "en"))

	c, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	var notFound viper.ConfigFileNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "en", c.Language)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mode: [unterminated\n"), 0o600))

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.Error(t, err)
	var notFound viper.ConfigFileNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	tmp := isolate(t)

	c := cfg.Config{Language: "de", Mode: cfg.ModeRich, Color: false, Spinner: "line"}
	path, err := cfg.WriteConfigFile(&c, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "acproxycam", "acproxycam.yaml"), path)

	loaded, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "de", loaded.Language)
	assert.Equal(t, cfg.ModeRich, loaded.Mode)
	assert.False(t, loaded.Color)
	assert.Equal(t, "line", loaded.Spinner)
}

func TestValidate(t *testing.T) {
	c := cfg.Config{Mode: "gui", Spinner: "dot"}
	require.Error(t, c.Validate())

	c = cfg.Config{Mode: cfg.ModeRich, Spinner: "nope"}
	require.Error(t, c.Validate())
}
