// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package ui

import (
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/acproxycam/acproxycam/internal/config"
	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/console/headless"
	"github.com/acproxycam/acproxycam/ui/console/rich"
)

// ResolveMode turns the configured mode into rich or headless. Auto picks
// rich only when both streams are terminals.
func ResolveMode(mode string, in io.Reader, out io.Writer) string {
	if mode != config.ModeAuto {
		return mode
	}
	if isTerminal(in) && isTerminal(out) {
		return config.ModeRich
	}
	return config.ModeHeadless
}

func isTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// ThemeFromConfig converts the configured colours into a rich theme.
func ThemeFromConfig(c config.ThemeConfig) rich.Theme {
	return rich.Theme{
		Error:   c.Error,
		Warning: c.Warning,
		Success: c.Success,
		Info:    c.Info,
		Accent:  c.Accent,
		Muted:   c.Muted,
	}
}

// NewConsole builds the console adapter selected by cfg on the given streams.
func NewConsole(cfg config.Config, in io.Reader, out io.Writer) (console.UI, error) {
	mode := ResolveMode(cfg.Mode, in, out)
	logging.Debugf("console mode %s (configured %s)", mode, cfg.Mode)

	switch mode {
	case config.ModeRich:
		theme := ThemeFromConfig(cfg.Theme)
		if err := theme.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid theme")
		}
		return rich.New(
			rich.WithInput(in),
			rich.WithOutput(out),
			rich.WithTheme(theme),
			rich.WithColor(cfg.Color),
			rich.WithSpinner(cfg.Spinner),
		), nil
	case config.ModeHeadless:
		return headless.New(headless.WithInput(in), headless.WithOutput(out)), nil
	}
	return nil, errors.Newf("invalid mode %q", cfg.Mode)
}
