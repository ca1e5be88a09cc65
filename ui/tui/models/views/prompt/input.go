// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
	forminput "github.com/acproxycam/acproxycam/ui/tui/models/helpers/form/input"
)

// Input asks for one line of text.
type Input struct {
	base
	Title string
	Input *forminput.Text
}

func NewInput(title string, styles Styles, opts ...forminput.TextOption) *Input {
	opts = append([]forminput.TextOption{forminput.WithStyles(styles.Muted, styles.Muted)}, opts...)
	return &Input{
		base:  newBase(styles),
		Title: title,
		Input: forminput.NewText(title, opts...),
	}
}

func (m *Input) Init() tea.Cmd {
	cmd, km := m.Input.Focus()
	m.setKeyMap(km)
	return tea.Batch(cmd, m.Input.Init())
}

func (m *Input) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handle(msg); handled {
		return m, cmd
	}

	cmd, action := m.Input.Update(msg)
	switch action {
	case form.ActionSubmit:
		return m, m.finish()
	case form.ActionCancel:
		return m, m.cancel()
	}
	return m, cmd
}

func (m *Input) View() string {
	if m.done {
		answer := m.Input.Value()
		if m.Input.Mode == forminput.TextSecret {
			answer = strings.Repeat("*", utf8.RuneCountInString(answer))
		}
		return m.summary(m.Title, answer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.Input.View(m.width()), m.help.View())
}

var _ View = (*Input)(nil)
