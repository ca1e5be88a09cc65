// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package rich implements console.UI for interactive terminals. Output is
// rendered with lipgloss; every prompt runs as a short inline bubbletea
// program on the console's input and output.
package rich

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/console/markup"
	"github.com/acproxycam/acproxycam/ui/tui/models/components/menu"
	"github.com/acproxycam/acproxycam/ui/tui/models/views/prompt"
)

// ErrInterrupted is returned by prompts the user aborted with ctrl+c.
var ErrInterrupted = tea.ErrInterrupted

const fallbackWidth = 80

// Theme holds the markup colour tokens of the category sinks.
type Theme struct {
	Error   string
	Warning string
	Success string
	Info    string
	Accent  string
	Muted   string
}

func DefaultTheme() Theme {
	return Theme{
		Error:   "red",
		Warning: "yellow",
		Success: "green",
		Info:    "blue",
		Accent:  "cyan",
		Muted:   "grey",
	}
}

// Validate checks that every colour of t is a markup colour token.
func (t Theme) Validate() error {
	for _, c := range []string{t.Error, t.Warning, t.Success, t.Info, t.Accent, t.Muted} {
		if _, err := markup.ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// withDefaults replaces every colour that is not a markup colour token with
// the matching DefaultTheme colour.
func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	fields := []struct{ got, def *string }{
		{&t.Error, &def.Error},
		{&t.Warning, &def.Warning},
		{&t.Success, &def.Success},
		{&t.Info, &def.Info},
		{&t.Accent, &def.Accent},
		{&t.Muted, &def.Muted},
	}
	for _, f := range fields {
		if _, err := markup.ParseColor(*f.got); err != nil {
			logging.Warnf("theme colour %q: %v; using %q", *f.got, err, *f.def)
			*f.got = *f.def
		}
	}
	return t
}

// runner runs a prompt model to completion.
type runner func(m tea.Model) (tea.Model, error)

type Console struct {
	in       io.Reader
	out      io.Writer
	color    bool
	theme    Theme
	spinner  spinner.Spinner
	renderer *lipgloss.Renderer
	run      runner
	width    func() int
}

type Option func(*Console)

func WithInput(r io.Reader) Option {
	return func(c *Console) { c.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithTheme sets the colours of the category sinks and prompts. Colours that
// fail Theme.Validate fall back to DefaultTheme with a logged warning.
func WithTheme(t Theme) Option {
	return func(c *Console) { c.theme = t }
}

// WithColor(false) renders without any colour or attribute sequences.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.color = enabled }
}

// WithSpinner selects the WithStatus spinner by name.
func WithSpinner(name string) Option {
	return func(c *Console) { c.spinner = prompt.SpinnerByName(name) }
}

func New(opts ...Option) *Console {
	c := &Console{
		in:      os.Stdin,
		out:     os.Stdout,
		color:   true,
		theme:   DefaultTheme(),
		spinner: spinner.Dot,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.theme = c.theme.withDefaults()

	c.renderer = lipgloss.NewRenderer(c.out)
	if !c.color || os.Getenv("NO_COLOR") != "" {
		c.renderer.SetColorProfile(termenv.Ascii)
	}
	if c.run == nil {
		c.run = c.runProgram
	}
	if c.width == nil {
		c.width = c.terminalWidth
	}
	return c
}

func (c *Console) runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(c.in), tea.WithOutput(c.out)).Run()
}

func (c *Console) terminalWidth() int {
	if f, ok := c.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

func (c *Console) println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

func (c *Console) style(color string) lipgloss.Style {
	fg, _ := markup.ParseColor(color)
	return c.renderer.NewStyle().Foreground(lipgloss.Color(fg))
}

func (c *Console) promptStyles() prompt.Styles {
	return prompt.Styles{
		Answer: c.style(c.theme.Accent),
		Muted:  c.style(c.theme.Muted),
	}
}

func (c *Console) menuStyles() menu.Styles {
	return menu.Styles{
		Active:   c.style(c.theme.Accent).Bold(true),
		Inactive: c.renderer.NewStyle(),
		Muted:    c.style(c.theme.Muted),
	}
}

// title renders caller text as a prompt title.
func (c *Console) title(text string) string {
	return markup.MustRender(c.renderer, "[bold]"+markup.Escape(text)+"[/]")
}

var _ console.UI = (*Console)(nil)
