// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/util/slicest"
)

type Item struct {
	Label    string
	Selected bool
}

func Items(labels ...string) []Item {
	return slicest.Map(labels, func(label string) Item {
		return Item{Label: label}
	})
}

type Styles struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Muted    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Inactive: lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (i Item) View(isActive bool, multi bool, styles Styles) string {
	pointer := "  "
	style := styles.Inactive
	if isActive {
		pointer = "> "
		style = styles.Active
	}

	content := i.Label
	if multi {
		box := "[ ] "
		if i.Selected {
			box = "[x] "
		}
		content = box + content
	}

	return style.Render(pointer + content)
}
