// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package console defines UI, the single boundary through which the rest of
// the application talks to the terminal: styled output, prompts, selection
// menus, key waits and a scoped busy indicator.
//
// Two implementations exist: rich (lipgloss + bubbletea, for humans at a TTY)
// and headless (line based, for pipes and automation). Call sites depend on
// UI only, so either can be substituted.
//
// Every method returns the error raised by the underlying terminal layer
// unchanged. Implementations are not safe for concurrent use; callers
// serialize their own calls.
package console

import "context"

// UI is the console capability interface.
type UI interface {
	// WriteLine writes text followed by a newline. Markup is not interpreted.
	WriteLine(text string) error
	// WriteMarkup renders styling markup as-is. It is the only sink that does
	// not escape its input.
	WriteMarkup(markup string) error
	WriteError(text string) error
	WriteWarning(text string) error
	WriteSuccess(text string) error
	WriteInfo(text string) error
	// WriteHeader prints the static application banner.
	WriteHeader() error
	WritePanel(title, content string) error
	// WriteRule draws a horizontal rule, with title centred when non-empty.
	WriteRule(title string) error
	// WriteTable renders rows under headers. The header count drives the
	// column count; rows of a different width are rendered however the
	// underlying toolkit handles them.
	WriteTable(headers []string, rows [][]string) error
	WriteGrid(fields []Field) error
	Clear() error

	// Ask reads a line of text. With WithDefault the default is shown and
	// returned for empty input; without it empty input is rejected.
	Ask(prompt string, opts ...PromptOption) (string, error)
	// AskInt reads a whole number, re-prompting on anything else.
	AskInt(prompt string, opts ...PromptOption) (int, error)
	// AskSecret reads a line without echoing it.
	AskSecret(prompt string) (string, error)
	Confirm(prompt string, defaultYes bool) (bool, error)
	// AskOptional reads a line that may be left empty or cancelled.
	AskOptional(prompt string) (Answer, error)

	// SelectOne shows choices as a menu. It cannot be cancelled.
	SelectOne(title string, choices []string) (string, error)
	// SelectOneWithEscape is SelectOne with cancellation, reported as NoChoice.
	SelectOneWithEscape(title string, choices []string) (Choice, error)
	// SelectOneWithEscapeAndIndex opens the menu with the cursor on
	// startIndex and reports the chosen index alongside the label.
	SelectOneWithEscapeAndIndex(title string, choices []string, startIndex int) (Choice, error)
	// SelectMany returns the toggled choices in display order.
	SelectMany(title string, choices []string, opts ...SelectOption) ([]string, error)

	// WaitForKey prints message (when non-empty) and blocks until any key.
	WaitForKey(message string) error
	// ReadKey blocks for a single key press and returns its name, e.g.
	// "enter", "esc", "a" or "ctrl+c".
	ReadKey() (string, error)

	// WithStatus shows status with a busy indicator while fn runs. The
	// indicator is removed on every exit path and fn's error is returned
	// unchanged.
	WithStatus(ctx context.Context, status string, fn func(ctx context.Context) error) error
}

// Field is one label/value row of a grid.
type Field struct {
	Label string
	Value string
}

// WithStatusValue runs fn under ui.WithStatus and returns its typed result.
func WithStatusValue[T any](ctx context.Context, ui UI, status string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := ui.WithStatus(ctx, status, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}
