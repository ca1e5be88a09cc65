// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package rich

import (
	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/tui/models/components/menu"
	forminput "github.com/acproxycam/acproxycam/ui/tui/models/helpers/form/input"
	"github.com/acproxycam/acproxycam/ui/tui/models/views/prompt"
	"github.com/acproxycam/acproxycam/util/slicest"
)

// runView runs v until it is done. A ctrl+c inside the prompt becomes
// ErrInterrupted, and so does a program that quit before the prompt was
// answered (bubbletea turns SIGTERM into a plain quit).
func (c *Console) runView(v prompt.View) error {
	if _, err := c.run(v); err != nil {
		return err
	}
	if v.Interrupted() || !v.Done() {
		return ErrInterrupted
	}
	return nil
}

func (c *Console) ask(text string, opts ...forminput.TextOption) (*prompt.Input, error) {
	styles := c.promptStyles()
	opts = append(opts, forminput.WithStyles(styles.Muted, c.style(c.theme.Error)))
	m := prompt.NewInput(c.title(text), styles, opts...)
	if err := c.runView(m); err != nil {
		return nil, err
	}
	return m, nil
}

func textDefault(cfg console.PromptConfig) []forminput.TextOption {
	if cfg.HasDefault {
		return []forminput.TextOption{forminput.WithDefault(cfg.Default)}
	}
	return nil
}

func (c *Console) Ask(text string, opts ...console.PromptOption) (string, error) {
	m, err := c.ask(text, textDefault(console.NewPromptConfig(opts...))...)
	if err != nil {
		return "", err
	}
	return m.Input.Value(), nil
}

func (c *Console) AskInt(text string, opts ...console.PromptOption) (int, error) {
	topts := append(textDefault(console.NewPromptConfig(opts...)), forminput.WithMode(forminput.TextInt))
	m, err := c.ask(text, topts...)
	if err != nil {
		return 0, err
	}
	return m.Input.Int()
}

func (c *Console) AskSecret(text string) (string, error) {
	m, err := c.ask(text, forminput.WithMode(forminput.TextSecret))
	if err != nil {
		return "", err
	}
	return m.Input.Value(), nil
}

func (c *Console) AskOptional(text string) (console.Answer, error) {
	m, err := c.ask(text, forminput.WithOptional(), forminput.WithCancel())
	if err != nil {
		return console.Answer{}, err
	}
	if m.Cancelled() {
		logging.Debugf("optional prompt %q cancelled", text)
		return console.CancelledAnswer, nil
	}
	return console.ValueAnswer(m.Input.Value()), nil
}

func (c *Console) Confirm(text string, defaultYes bool) (bool, error) {
	m := prompt.NewConfirm(c.title(text), defaultYes, c.promptStyles())
	if err := c.runView(m); err != nil {
		return false, err
	}
	return m.Value(), nil
}

func (c *Console) selectMenu(title string, choices []string, opts ...menu.Option) (*prompt.Select, error) {
	opts = append([]menu.Option{menu.WithStyles(c.menuStyles()), menu.WithPageSize(console.DefaultPageSize)}, opts...)
	m := prompt.NewSelect(c.title(title), choices, c.promptStyles(), opts...)
	if err := c.runView(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *Console) SelectOne(title string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", console.ErrNoChoices
	}
	m, err := c.selectMenu(title, choices)
	if err != nil {
		return "", err
	}
	return choices[m.Index()], nil
}

func (c *Console) SelectOneWithEscape(title string, choices []string) (console.Choice, error) {
	return c.SelectOneWithEscapeAndIndex(title, choices, 0)
}

func (c *Console) SelectOneWithEscapeAndIndex(title string, choices []string, startIndex int) (console.Choice, error) {
	m, err := c.selectMenu(title, choices, menu.WithCancel(), menu.WithCursor(console.ClampIndex(startIndex, len(choices))))
	if err != nil {
		return console.NoChoice, err
	}
	if m.Cancelled() {
		logging.Debugf("selection %q cancelled", title)
		return console.NoChoice, nil
	}
	return console.ChoiceAt(choices, m.Index()), nil
}

func (c *Console) SelectMany(title string, choices []string, opts ...console.SelectOption) ([]string, error) {
	cfg := console.NewSelectConfig(opts...)
	styles := c.promptStyles()
	m := prompt.NewSelect(c.title(title), choices, styles,
		menu.WithStyles(c.menuStyles()),
		menu.WithPageSize(cfg.PageSize),
		menu.WithMulti(),
	)
	m.Instructions = cfg.Instructions
	if m.Instructions == "" {
		m.Instructions = i18n.T("select.instructions")
	}
	if err := c.runView(m); err != nil {
		return nil, err
	}
	return slicest.Map(m.Indices(), func(i int) string { return choices[i] }), nil
}

func (c *Console) WaitForKey(message string) error {
	if message != "" {
		message = c.style(c.theme.Muted).Render(message)
	}
	return c.runView(prompt.NewKey(message, true, c.promptStyles()))
}

func (c *Console) ReadKey() (string, error) {
	m := prompt.NewKey("", false, c.promptStyles())
	if err := c.runView(m); err != nil {
		return "", err
	}
	return m.Pressed(), nil
}
