// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key waits for a single key press. With Interruptible set, ctrl+c interrupts
// instead of being reported as the pressed key.
type Key struct {
	base
	Message       string
	Interruptible bool

	pressed string
}

func NewKey(message string, interruptible bool, styles Styles) *Key {
	return &Key{
		base:          newBase(styles),
		Message:       message,
		Interruptible: interruptible,
	}
}

// Pressed is the name of the key that ended the wait, as tea.KeyMsg.String
// reports it.
func (m *Key) Pressed() string {
	return m.pressed
}

func (m *Key) Init() tea.Cmd {
	return nil
}

func (m *Key) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Interruptible {
		if handled, cmd := m.handle(msg); handled {
			return m, cmd
		}
	} else {
		m.size.Update(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.pressed = msg.String()
		return m, m.finish()
	}
	return m, nil
}

func (m *Key) View() string {
	return m.Message
}

var _ View = (*Key)(nil)
