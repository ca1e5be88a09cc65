// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence for the
// console toolkit. It uses Viper for file/env/flag parsing and goccy/go-yaml
// to write configuration files.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appDir   = "acproxycam"
	fileName = "acproxycam"
	envPref  = "acproxycam"
)

// Console modes.
const (
	ModeAuto     = "auto"
	ModeRich     = "rich"
	ModeHeadless = "headless"
)

// Spinners lists the spinner names accepted by the `spinner` key.
var Spinners = []string{"dot", "line", "minidot", "jump", "pulse", "points", "globe", "moon", "meter", "ellipsis"}

// ThemeConfig holds the colours used by the category sinks. Values are any
// colour lipgloss accepts (ANSI index or hex).
type ThemeConfig struct {
	Error   string `mapstructure:"error" yaml:"error"`
	Warning string `mapstructure:"warning" yaml:"warning"`
	Success string `mapstructure:"success" yaml:"success"`
	Info    string `mapstructure:"info" yaml:"info"`
	Accent  string `mapstructure:"accent" yaml:"accent"`
	Muted   string `mapstructure:"muted" yaml:"muted"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config is the on-disk configuration of the console toolkit.
type Config struct {
	Language string      `mapstructure:"language" yaml:"language"`
	Mode     string      `mapstructure:"mode" yaml:"mode"`
	Color    bool        `mapstructure:"color" yaml:"color"`
	Spinner  string      `mapstructure:"spinner" yaml:"spinner"`
	Theme    ThemeConfig `mapstructure:"theme" yaml:"theme"`
	Log      LogConfig   `mapstructure:"log" yaml:"log"`
}

// Defaults returns the viper defaults for every known key.
func Defaults() map[string]any {
	return map[string]any{
		"language":      "en",
		"mode":          ModeAuto,
		"color":         true,
		"spinner":       "dot",
		"theme.error":   "196",
		"theme.warning": "214",
		"theme.success": "40",
		"theme.info":    "39",
		"theme.accent":  "81",
		"theme.muted":   "240",
		"log.level":     "warn",
	}
}

// Validate rejects values the console cannot honour.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeRich, ModeHeadless:
	default:
		return errors.Newf("invalid mode %q (want %s, %s or %s)", c.Mode, ModeAuto, ModeRich, ModeHeadless)
	}
	if !slices.Contains(Spinners, c.Spinner) {
		return errors.Newf("unknown spinner %q", c.Spinner)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "ACProxyCam")
		default: // Linux, macOS, etc.
			configDir = filepath.Join("/etc", appDir)
		}
	} else {
		// pick up XDG_CONFIG_HOME changes made after start-up
		xdg.Reload()
		if xdg.ConfigHome == "" {
			return "", errors.New("could not determine user config directory")
		}
		configDir = filepath.Join(xdg.ConfigHome, appDir)
	}

	return filepath.Join(configDir, fileName+".yaml"), nil
}

// LoadConfig layers defaults, config files, ACPROXYCAM_* environment variables
// and the flags of cmd (in increasing precedence) and decodes them into T.
// A missing config file is reported as viper.ConfigFileNotFoundError together
// with the decoded defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")

	// 3. Explicit --config has the highest precedence for file-based configuration.
	if additionalConfigFilePath != nil && *additionalConfigFilePath != "" {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Environment
	v.SetEnvPrefix(envPref)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 6. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, errors.Wrap(err, "binding flags")
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return c, errors.Wrapf(readErr, "reading config %s", v.ConfigFileUsed())
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decoding config")
	}

	return c, readErr
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "encoding config")
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "could not create config directory %s", configDir)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}

	return path, nil
}
