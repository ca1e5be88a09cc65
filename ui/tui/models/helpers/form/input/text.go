// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/tui/models/helpers/form"
)

// TextMode selects how a Text input echoes and validates.
type TextMode int

const (
	TextPlain TextMode = iota
	TextSecret
	TextInt
)

// Text is a single-line prompt input. Label is rendered verbatim, so callers
// pass already styled text.
type Text struct {
	Label      string
	Mode       TextMode
	Default    string
	HasDefault bool
	// Optional accepts empty input without a default.
	Optional bool
	KeyMap   form.KeyMap

	HintStyle  lipgloss.Style
	ErrorStyle lipgloss.Style

	input   textinput.Model
	focused bool
	err     string
}

type TextOption func(*Text)

func WithMode(mode TextMode) TextOption {
	return func(t *Text) { t.Mode = mode }
}

func WithDefault(v string) TextOption {
	return func(t *Text) { t.Default, t.HasDefault = v, true }
}

func WithOptional() TextOption {
	return func(t *Text) { t.Optional = true }
}

// WithCancel enables the cancel key.
func WithCancel() TextOption {
	return func(t *Text) { t.KeyMap.Cancel.SetEnabled(true) }
}

func WithStyles(hint, err lipgloss.Style) TextOption {
	return func(t *Text) { t.HintStyle, t.ErrorStyle = hint, err }
}

func NewText(label string, opts ...TextOption) *Text {
	t := &Text{
		Label:      label,
		KeyMap:     form.DefaultKeyMap(),
		HintStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ErrorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		input:      textinput.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.input.Prompt = ""
	if t.Mode == TextSecret {
		t.input.EchoMode = textinput.EchoPassword
		t.input.EchoCharacter = '*'
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

// Value is the typed text, or the default when nothing was typed.
func (t *Text) Value() string {
	v := t.input.Value()
	if v == "" && t.HasDefault {
		return t.Default
	}
	return v
}

// Int parses Value. It only succeeds for inputs that passed TextInt validation.
func (t *Text) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Value()))
}

// Err is the validation message currently shown, if any.
func (t *Text) Err() string {
	return t.err
}

func (t *Text) Init() tea.Cmd {
	return textinput.Blink
}

func (t *Text) validate() string {
	v := t.Value()
	if v == "" {
		if t.Optional {
			return ""
		}
		return i18n.T("prompt.required")
	}
	if t.Mode == TextInt {
		if _, err := t.Int(); err != nil {
			return i18n.T("prompt.invalid_int")
		}
	}
	return ""
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.KeyMap.Cancel):
			return nil, form.ActionCancel
		case key.Matches(msg, t.KeyMap.Submit):
			if t.err = t.validate(); t.err != "" {
				return nil, form.ActionNone
			}
			return nil, form.ActionSubmit
		}
		t.err = ""
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	line := t.Label
	if t.HasDefault && t.Mode != TextSecret {
		line += " " + t.HintStyle.Render("("+t.Default+")")
	}
	line += " "

	if width > 0 {
		t.input.Width = max(width-lipgloss.Width(line)-1, 1)
	}
	view := line + t.input.View()
	if t.err != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, t.ErrorStyle.Render(t.err))
	}
	return view
}

var _ form.FormInput = (*Text)(nil)
