// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form defines the contract between prompt inputs and the views that
// host them. An input handles key messages itself and reports completion
// through the returned Action, so a host never has to wait for a command
// round trip to learn that the user submitted or cancelled.
package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acproxycam/acproxycam/ui/tui/util"
)

type FormInput interface {
	util.Focusable
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	View(width int) string
}
