package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproxycam/acproxycam/internal/config"
	"github.com/acproxycam/acproxycam/ui/console/headless"
	"github.com/acproxycam/acproxycam/ui/console/rich"
)

func defaultConfig() config.Config {
	return config.Config{
		Language: "en",
		Mode:     config.ModeAuto,
		Color:    true,
		Spinner:  "dot",
		Theme: config.ThemeConfig{
			Error: "196", Warning: "214", Success: "40", Info: "39", Accent: "81", Muted: "240",
		},
	}
}

func TestResolveMode(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("")
	assert.Equal(t, config.ModeHeadless, ResolveMode(config.ModeAuto, in, &out))
	assert.Equal(t, config.ModeRich, ResolveMode(config.ModeRich, in, &out))
	assert.Equal(t, config.ModeHeadless, ResolveMode(config.ModeHeadless, in, &out))
}

func TestNewConsole(t *testing.T) {
	var out bytes.Buffer
	cfg := defaultConfig()

	c, err := NewConsole(cfg, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.IsType(t, &headless.Console{}, c)

	cfg.Mode = config.ModeRich
	c, err = NewConsole(cfg, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.IsType(t, &rich.Console{}, c)

	cfg.Theme.Accent = "not-a-colour"
	_, err = NewConsole(cfg, strings.NewReader(""), &out)
	assert.ErrorContains(t, err, "invalid theme")

	cfg = defaultConfig()
	cfg.Mode = "fancy"
	_, err = NewConsole(cfg, strings.NewReader(""), &out)
	assert.Error(t, err)
}
