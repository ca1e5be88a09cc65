// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/tui/models/components/menu"
	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
	"github.com/acproxycam/acproxycam/util/slicest"
)

// Select picks one or more entries from a menu.
type Select struct {
	base
	Title        string
	Instructions string
	Menu         *menu.Model
}

func NewSelect(title string, choices []string, styles Styles, opts ...menu.Option) *Select {
	return &Select{
		base:  newBase(styles),
		Title: title,
		Menu:  menu.New(menu.Items(choices...), opts...),
	}
}

// Index is the chosen index, or -1 when nothing was chosen.
func (m *Select) Index() int {
	if !m.done || m.cancelled || m.interrupted {
		return -1
	}
	return m.Menu.Cursor()
}

// Indices are the toggled indices of a multi selection in display order.
func (m *Select) Indices() []int {
	return m.Menu.SelectedIndices()
}

func (m *Select) Init() tea.Cmd {
	cmd, km := m.Menu.Focus()
	m.setKeyMap(km)
	return cmd
}

func (m *Select) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handle(msg); handled {
		return m, cmd
	}
	cmd, action := m.Menu.Update(msg)
	switch action {
	case form.ActionSubmit:
		return m, m.finish()
	case form.ActionCancel:
		return m, m.cancel()
	}
	return m, cmd
}

func (m *Select) answer() string {
	if m.Menu.Multi {
		return strings.Join(slicest.Map(m.Indices(), func(i int) string {
			return m.Menu.Items[i].Label
		}), ", ")
	}
	if i := m.Index(); i >= 0 {
		return m.Menu.Items[i].Label
	}
	return ""
}

func (m *Select) View() string {
	if m.done {
		return m.summary(m.Title, m.answer())
	}

	parts := []string{m.Title, m.Menu.View(m.width())}
	if m.Menu.Multi {
		parts = append(parts, m.Styles.Muted.Render(i18n.T("select.selected_count", len(m.Indices()))))
	}
	if m.Instructions != "" {
		parts = append(parts, m.Styles.Muted.Render(m.Instructions))
	}
	parts = append(parts, m.help.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

var _ View = (*Select)(nil)
