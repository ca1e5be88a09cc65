// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package headless

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/howeyc/gopass"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/util/slicest"
)

func defaultHint(cfg console.PromptConfig) string {
	if cfg.HasDefault {
		return "(" + cfg.Default + ")"
	}
	return ""
}

func (c *Console) Ask(text string, opts ...console.PromptOption) (string, error) {
	cfg := console.NewPromptConfig(opts...)
	for {
		if err := c.prompt(text, defaultHint(cfg)); err != nil {
			return "", err
		}
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		switch {
		case line != "":
			return line, nil
		case cfg.HasDefault:
			return cfg.Default, nil
		}
		if err := c.println(i18n.T("prompt.required")); err != nil {
			return "", err
		}
	}
}

func (c *Console) AskInt(text string, opts ...console.PromptOption) (int, error) {
	for {
		line, err := c.Ask(text, opts...)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
		if err := c.println(i18n.T("prompt.invalid_int")); err != nil {
			return 0, err
		}
	}
}

// fdReader hands gopass the buffered input together with the descriptor of
// the original stream, so a terminal is still switched to raw mode.
type fdReader struct {
	io.Reader
	fd uintptr
}

func (r fdReader) Fd() uintptr { return r.fd }

func (c *Console) AskSecret(text string) (string, error) {
	r := fdReader{Reader: c.in, fd: ^uintptr(0)}
	if f, ok := c.src.(*os.File); ok {
		r.fd = f.Fd()
	}
	pass, err := gopass.GetPasswdPrompt(text+": ", true, r, c.out)
	if err != nil && (err != io.EOF || len(pass) == 0) {
		return "", err
	}
	// gopass stops at the '\r' of a CRLF line
	if next, err := c.in.Peek(1); err == nil && next[0] == '\n' {
		_, _ = c.in.ReadByte()
	}
	return string(pass), nil
}

func (c *Console) Confirm(text string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		if err := c.prompt(text, hint); err != nil {
			return false, err
		}
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes", "j", "ja":
			return true, nil
		case "n", "no", "nein":
			return false, nil
		}
		if err := c.println(i18n.T("headless.invalid_confirm")); err != nil {
			return false, err
		}
	}
}

func (c *Console) AskOptional(text string) (console.Answer, error) {
	if err := c.prompt(text, i18n.T("headless.cancel_hint")); err != nil {
		return console.Answer{}, err
	}
	line, err := c.readLine()
	if err != nil {
		return console.Answer{}, err
	}
	if isCancel(line) {
		c.debugf("optional prompt %q cancelled", text)
		return console.CancelledAnswer, nil
	}
	return console.ValueAnswer(line), nil
}

func (c *Console) listChoices(title string, choices []string) error {
	lines := append([]string{title}, slicest.MapI(choices, func(i int, choice string) string {
		return "  " + strconv.Itoa(i+1) + ") " + choice
	})...)
	return c.println(strings.Join(lines, "\n"))
}

// resolveChoice maps an answer to a choice index: a 1-based number first,
// then an exact label.
func resolveChoice(choices []string, answer string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return n - 1, true
		}
		return 0, false
	}
	for i, choice := range choices {
		if choice == answer {
			return i, true
		}
	}
	return 0, false
}

// selectIndex reads answers until one names a choice. It returns -1 when the
// prompt was cancelled.
func (c *Console) selectIndex(title string, choices []string, start int, cancelable bool) (int, error) {
	if err := c.listChoices(title, choices); err != nil {
		return -1, err
	}
	hint := ""
	if len(choices) > 0 {
		hint = "[" + strconv.Itoa(start+1) + "]"
	}
	if cancelable {
		hint = strings.TrimSpace(hint + " " + i18n.T("headless.cancel_hint"))
	}

	for {
		if err := c.prompt(i18n.T("headless.choice_prompt"), hint); err != nil {
			return -1, err
		}
		line, err := c.readLine()
		if err != nil {
			return -1, err
		}
		if cancelable && isCancel(line) {
			return -1, nil
		}
		if line == "" && len(choices) > 0 {
			return start, nil
		}
		if i, ok := resolveChoice(choices, line); ok {
			return i, nil
		}
		if err := c.println(i18n.T("headless.invalid_choice")); err != nil {
			return -1, err
		}
	}
}

func (c *Console) SelectOne(title string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", console.ErrNoChoices
	}
	i, err := c.selectIndex(title, choices, 0, false)
	if err != nil {
		return "", err
	}
	return choices[i], nil
}

func (c *Console) SelectOneWithEscape(title string, choices []string) (console.Choice, error) {
	return c.SelectOneWithEscapeAndIndex(title, choices, 0)
}

func (c *Console) SelectOneWithEscapeAndIndex(title string, choices []string, startIndex int) (console.Choice, error) {
	i, err := c.selectIndex(title, choices, console.ClampIndex(startIndex, len(choices)), true)
	if err != nil {
		return console.NoChoice, err
	}
	if i < 0 {
		c.debugf("selection %q cancelled", title)
		return console.NoChoice, nil
	}
	return console.ChoiceAt(choices, i), nil
}

func (c *Console) SelectMany(title string, choices []string, opts ...console.SelectOption) ([]string, error) {
	cfg := console.NewSelectConfig(opts...)
	if err := c.listChoices(title, choices); err != nil {
		return nil, err
	}
	if cfg.Instructions != "" {
		if err := c.println(cfg.Instructions); err != nil {
			return nil, err
		}
	}

outer:
	for {
		if err := c.prompt(i18n.T("headless.multi_prompt"), ""); err != nil {
			return nil, err
		}
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		picked := make([]bool, len(choices))
		for _, part := range strings.Split(line, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			i, ok := resolveChoice(choices, part)
			if !ok {
				if err := c.println(i18n.T("headless.invalid_choice")); err != nil {
					return nil, err
				}
				continue outer
			}
			picked[i] = true
		}

		selected := []string{}
		for i, ok := range picked {
			if ok {
				selected = append(selected, choices[i])
			}
		}
		return selected, nil
	}
}

func (c *Console) WaitForKey(message string) error {
	if message != "" {
		if err := c.println(message); err != nil {
			return err
		}
	}
	_, err := c.readLine()
	return err
}

// ReadKey reads one line and names it the way the rich console names keys:
// an empty line is "enter" and the cancel token is "esc".
func (c *Console) ReadKey() (string, error) {
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	switch {
	case line == "":
		return "enter", nil
	case isCancel(line):
		return "esc", nil
	}
	return line, nil
}
