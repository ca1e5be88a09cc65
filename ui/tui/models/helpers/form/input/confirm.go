// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
)

// Confirm is a yes/no question answered with y/n or by moving between two
// buttons and pressing enter.
type Confirm struct {
	Label  string
	KeyMap ConfirmKeyMap

	yes, no *Button
	value   bool
	focused bool
}

type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Switch key.Binding
}

func (k ConfirmKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Yes, k.No, k.Switch} }

func (k ConfirmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Yes, k.No, k.Switch}} }

func NewConfirm(label string, defaultYes bool) *Confirm {
	return &Confirm{
		Label: label,
		KeyMap: ConfirmKeyMap{
			Yes: key.NewBinding(
				key.WithKeys("y", "Y", "j", "J"),
				key.WithHelp("y", i18n.T("key.yes")),
			),
			No: key.NewBinding(
				key.WithKeys("n", "N"),
				key.WithHelp("n", i18n.T("key.no")),
			),
			Switch: key.NewBinding(
				key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"),
				key.WithHelp("←/→", i18n.T("key.switch")),
			),
		},
		yes:   NewButton(i18n.T("confirm.yes"), false),
		no:    NewButton(i18n.T("confirm.no"), false),
		value: defaultYes,
	}
}

// Value is the currently selected answer.
func (c *Confirm) Value() bool {
	return c.value
}

func (c *Confirm) active() *Button {
	if c.value {
		return c.yes
	}
	return c.no
}

func (c *Confirm) syncFocus() help.KeyMap {
	c.yes.Blur()
	c.no.Blur()
	if !c.focused {
		return c.KeyMap
	}
	_, km := c.active().Focus()
	return km
}

func (c *Confirm) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.syncFocus()
}

func (c *Confirm) Blur() {
	c.focused = false
	c.syncFocus()
}

func (c *Confirm) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(keyMsg, c.KeyMap.Yes):
		c.value = true
		c.syncFocus()
		return nil, form.ActionSubmit
	case key.Matches(keyMsg, c.KeyMap.No):
		c.value = false
		c.syncFocus()
		return nil, form.ActionSubmit
	case key.Matches(keyMsg, c.KeyMap.Switch):
		c.value = !c.value
		c.syncFocus()
		return nil, form.ActionNone
	}
	return c.active().Update(keyMsg)
}

func (c *Confirm) View(width int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, c.yes.View(width/2), " ", c.no.View(width/2))
	return lipgloss.JoinHorizontal(lipgloss.Center, c.Label, " ", buttons)
}

func (c *Confirm) Init() tea.Cmd { return nil }

var _ form.FormInput = (*Confirm)(nil)
