// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package headless

import (
	"context"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/charmbracelet/x/ansi"

	"github.com/acproxycam/acproxycam/buildvars"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/console/markup"
	"github.com/acproxycam/acproxycam/util/slicest"
)

func (c *Console) WriteLine(text string) error {
	return c.println(text)
}

// WriteMarkup writes m with all styling removed.
func (c *Console) WriteMarkup(m string) error {
	text, err := markup.Strip(m)
	if err != nil {
		return err
	}
	return c.println(text)
}

func (c *Console) WriteError(text string) error   { return c.println("✗ " + text) }
func (c *Console) WriteWarning(text string) error { return c.println("! " + text) }
func (c *Console) WriteSuccess(text string) error { return c.println("✓ " + text) }
func (c *Console) WriteInfo(text string) error    { return c.println("i " + text) }

func (c *Console) WriteHeader() error {
	if err := c.println(buildvars.AppName + " " + buildvars.VersionOrDefault("dev")); err != nil {
		return err
	}
	return c.WriteRule("")
}

func (c *Console) WritePanel(title, content string) error {
	if title != "" {
		if err := c.WriteRule(title); err != nil {
			return err
		}
	}
	if err := c.println(content); err != nil {
		return err
	}
	return c.WriteRule("")
}

func (c *Console) WriteRule(title string) error {
	if title == "" {
		return c.println(strings.Repeat("-", ruleWidth))
	}
	rest := max(ruleWidth-ansi.StringWidth(title)-4, 2)
	return c.println("-- " + title + " " + strings.Repeat("-", rest))
}

func (c *Console) WriteTable(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return c.println(strings.Join(headers, "  "))
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	return c.println(strings.TrimRight(t.Render("simple"), "\n"))
}

func (c *Console) WriteGrid(fields []console.Field) error {
	if len(fields) == 0 {
		return nil
	}
	width := slicest.Reduce(fields, func(f console.Field, w int) int {
		return max(w, ansi.StringWidth(f.Label))
	})
	lines := slicest.Map(fields, func(f console.Field) string {
		return f.Label + strings.Repeat(" ", width-ansi.StringWidth(f.Label)) + "  " + f.Value
	})
	return c.println(strings.Join(lines, "\n"))
}

// Clear is a no-op: there is no screen to reset on a line stream.
func (c *Console) Clear() error {
	return nil
}

// WithStatus prints status once and runs fn on the calling goroutine.
func (c *Console) WithStatus(ctx context.Context, status string, fn func(ctx context.Context) error) error {
	if err := c.println(status + "..."); err != nil {
		return err
	}
	return fn(ctx)
}
