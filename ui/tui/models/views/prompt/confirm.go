// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
	forminput "github.com/acproxycam/acproxycam/ui/tui/models/helpers/form/input"
	"github.com/acproxycam/acproxycam/ui/tui/util"
)

type Confirm struct {
	base
	Title   string
	Confirm *forminput.Confirm
}

func NewConfirm(title string, defaultYes bool, styles Styles) *Confirm {
	return &Confirm{
		base:    newBase(styles),
		Title:   title,
		Confirm: forminput.NewConfirm(title, defaultYes),
	}
}

func (m *Confirm) Value() bool {
	return m.Confirm.Value()
}

func (m *Confirm) Init() tea.Cmd {
	cmd, km := m.Confirm.Focus()
	m.setKeyMap(util.MergeKeyMaps(m.Confirm.KeyMap, km))
	return cmd
}

func (m *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handle(msg); handled {
		return m, cmd
	}
	cmd, action := m.Confirm.Update(msg)
	if action == form.ActionSubmit {
		return m, m.finish()
	}
	return m, cmd
}

func (m *Confirm) View() string {
	if m.done {
		answer := i18n.T("confirm.no")
		if m.Confirm.Value() {
			answer = i18n.T("confirm.yes")
		}
		return m.summary(m.Title, answer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.Confirm.View(m.width()), m.help.View())
}

var _ View = (*Confirm)(nil)
