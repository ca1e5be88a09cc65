// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import "github.com/acproxycam/acproxycam/ui/tui/util"

func (m *Model) up() {
	m.moveTo(m.cursor - 1)
}

func (m *Model) down() {
	m.moveTo(m.cursor + 1)
}

func (m *Model) first() {
	m.moveTo(0)
}

func (m *Model) last() {
	m.moveTo(len(m.Items) - 1)
}

// moveTo places the cursor on i, clamped into the item range, and scrolls the
// page so the cursor stays visible.
func (m *Model) moveTo(i int) {
	if len(m.Items) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = util.Clamp(0, i, len(m.Items)-1)

	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = util.Clamp(0, m.offset, max(len(m.Items)-page, 0))
}

func (m *Model) toggle() {
	if len(m.Items) > 0 {
		m.Items[m.cursor].Selected = !m.Items[m.cursor].Selected
	}
}

func (m *Model) pageSize() int {
	if m.PageSize <= 0 {
		return len(m.Items)
	}
	return m.PageSize
}
