// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package headless implements console.UI on plain line-based streams for
// pipes, CI jobs and scripted answers. Every prompt reads one
// newline-terminated answer; a line holding "<esc>" or the ESC byte cancels
// prompts that can be cancelled.
package headless

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui/console"
)

// CancelToken is the answer that cancels a prompt.
const CancelToken = "<esc>"

const ruleWidth = 80

type Console struct {
	src io.Reader
	in  *bufio.Reader
	out io.Writer
}

type Option func(*Console)

func WithInput(r io.Reader) Option {
	return func(c *Console) { c.src = r }
}

func WithOutput(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

func New(opts ...Option) *Console {
	c := &Console{src: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	c.in = bufio.NewReader(c.src)
	return c
}

func (c *Console) println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

func (c *Console) prompt(text, hint string) error {
	if hint != "" {
		text += " " + hint
	}
	_, err := fmt.Fprint(c.out, text+": ")
	return err
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; io.EOF only comes back once nothing
// is left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isCancel(line string) bool {
	return line == CancelToken || line == "\x1b"
}

func (c *Console) debugf(format string, v ...any) {
	logging.Debugf("headless: "+format, v...)
}

var _ console.UI = (*Console)(nil)
