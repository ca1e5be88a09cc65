// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a navigable list of choices. In single mode enter picks the
// item under the cursor; in multi mode space toggles items and enter accepts
// the toggled set.
package menu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
	"github.com/acproxycam/acproxycam/util/slicest"
)

type Model struct {
	Items    []Item
	Multi    bool
	PageSize int
	KeyMap   KeyMap
	Styles   Styles

	cursor  int
	offset  int
	focused bool
}

type Option func(*Model)

// WithMulti switches the menu to multi selection.
func WithMulti() Option {
	return func(m *Model) {
		m.Multi = true
		m.KeyMap.Toggle.SetEnabled(true)
	}
}

func WithCancel() Option {
	return func(m *Model) { m.KeyMap.Cancel.SetEnabled(true) }
}

func WithPageSize(n int) Option {
	return func(m *Model) { m.PageSize = n }
}

func WithStyles(s Styles) Option {
	return func(m *Model) { m.Styles = s }
}

// WithCursor sets the initial cursor position. Out of range values are clamped.
func WithCursor(i int) Option {
	return func(m *Model) { m.cursor = i }
}

func New(items []Item, opts ...Option) *Model {
	m := &Model{
		Items:  items,
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.moveTo(m.cursor)
	return m
}

// Cursor is the index of the highlighted item, or -1 for an empty menu.
func (m *Model) Cursor() int {
	if len(m.Items) == 0 {
		return -1
	}
	return m.cursor
}

// SelectedIndices lists toggled items in display order.
func (m *Model) SelectedIndices() []int {
	indices := []int{}
	for i, item := range m.Items {
		if item.Selected {
			indices = append(indices, i)
		}
	}
	return indices
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.up()
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.down()
	case key.Matches(keyMsg, m.KeyMap.First):
		m.first()
	case key.Matches(keyMsg, m.KeyMap.Last):
		m.last()
	case key.Matches(keyMsg, m.KeyMap.Toggle):
		m.toggle()
	case key.Matches(keyMsg, m.KeyMap.Cancel):
		return nil, form.ActionCancel
	case key.Matches(keyMsg, m.KeyMap.Select):
		// a single selection needs something under the cursor
		if !m.Multi && len(m.Items) == 0 {
			return nil, form.ActionNone
		}
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (m *Model) View(width int) string {
	if len(m.Items) == 0 {
		return m.Styles.Muted.Render(i18n.T("select.empty"))
	}

	page := m.pageSize()
	end := min(m.offset+page, len(m.Items))

	var lines []string
	if m.offset > 0 {
		lines = append(lines, m.Styles.Muted.Render(i18n.T("select.more_above", m.offset)))
	}
	lines = append(lines, slicest.MapI(m.Items[m.offset:end], func(i int, item Item) string {
		return item.View(m.offset+i == m.cursor, m.Multi, m.Styles)
	})...)
	if rest := len(m.Items) - end; rest > 0 {
		lines = append(lines, m.Styles.Muted.Render(i18n.T("select.more_below", rest)))
	}

	style := lipgloss.NewStyle()
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements form.FormInput
var _ form.FormInput = (*Model)(nil)
