// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var spinners = map[string]spinner.Spinner{
	"dot":      spinner.Dot,
	"line":     spinner.Line,
	"minidot":  spinner.MiniDot,
	"jump":     spinner.Jump,
	"pulse":    spinner.Pulse,
	"points":   spinner.Points,
	"globe":    spinner.Globe,
	"moon":     spinner.Moon,
	"meter":    spinner.Meter,
	"ellipsis": spinner.Ellipsis,
}

// SpinnerByName maps a configured spinner name to its frames. Unknown names
// fall back to spinner.Dot.
func SpinnerByName(name string) spinner.Spinner {
	if s, ok := spinners[name]; ok {
		return s
	}
	return spinner.Dot
}

type workDoneMsg struct{}

// Status shows a spinner next to a status line until the done channel is
// closed. Its final view is empty so nothing of it remains on screen.
type Status struct {
	base
	Text string

	spinner spinner.Model
	workEnd <-chan struct{}
}

func NewStatus(text string, frames spinner.Spinner, done <-chan struct{}, styles Styles) *Status {
	return &Status{
		base:    newBase(styles),
		Text:    text,
		spinner: spinner.New(spinner.WithSpinner(frames), spinner.WithStyle(styles.Answer)),
		workEnd: done,
	}
}

func (m *Status) waitForWork() tea.Msg {
	<-m.workEnd
	return workDoneMsg{}
}

func (m *Status) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForWork)
}

func (m *Status) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handle(msg); handled {
		return m, cmd
	}
	switch msg := msg.(type) {
	case workDoneMsg:
		return m, m.finish()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Status) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.Text
}

var _ View = (*Status)(nil)
