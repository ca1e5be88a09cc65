// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the small contracts and helpers shared by the prompt
// components: the component Model interface, focus handling, size tracking
// and key-map merging.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a component embedded in a prompt view. Unlike tea.Model it
// updates in place.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}
