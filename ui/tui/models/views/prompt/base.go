// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt holds the top-level bubbletea models the rich console runs
// for a single interaction. Each model quits its program once it is done and
// renders a one-line summary as its final view, so the answered prompt stays
// on screen above whatever is printed next.
package prompt

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/ui/tui/models/components/keyhelp"
	"github.com/acproxycam/acproxycam/ui/tui/util"
)

type Styles struct {
	Answer lipgloss.Style
	Muted  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Answer: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// View is a prompt model the console can drive to completion.
type View interface {
	tea.Model
	Done() bool
	Interrupted() bool
}

var interruptKey = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

type base struct {
	Styles Styles

	done        bool
	interrupted bool
	cancelled   bool
	size        util.Size
	help        *keyhelp.Model
}

func newBase(styles Styles) base {
	return base{Styles: styles, help: keyhelp.New(styles.Muted)}
}

func (b *base) Done() bool        { return b.done }
func (b *base) Interrupted() bool { return b.interrupted }
func (b *base) Cancelled() bool   { return b.cancelled }

// handle takes care of size updates and ctrl+c. It reports whether msg was
// consumed.
func (b *base) handle(msg tea.Msg) (bool, tea.Cmd) {
	if b.size.Update(msg) {
		b.help.SetWidth(b.size.Width)
		return true, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, interruptKey) {
		b.interrupted = true
		return true, b.finish()
	}
	return false, nil
}

func (b *base) finish() tea.Cmd {
	b.done = true
	return tea.Quit
}

func (b *base) cancel() tea.Cmd {
	b.cancelled = true
	return b.finish()
}

func (b *base) setKeyMap(km help.KeyMap) {
	b.help.KeyMap = km
}

func (b *base) width() int {
	return b.size.WidthOr(80)
}

// summary is the final line left behind by a finished prompt.
func (b *base) summary(title, answer string) string {
	if answer == "" || b.cancelled || b.interrupted {
		return title
	}
	return title + " " + b.Styles.Answer.Render(answer)
}
