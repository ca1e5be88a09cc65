// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package rich

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/acproxycam/acproxycam/buildvars"
	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/console/markup"
	"github.com/acproxycam/acproxycam/util/slicest"
)

func (c *Console) WriteLine(text string) error {
	return c.println(text)
}

func (c *Console) WriteMarkup(m string) error {
	out, err := markup.Render(c.renderer, m)
	if err != nil {
		return err
	}
	return c.println(out)
}

// writeCategory wraps escaped text in the fixed style of a message category.
func (c *Console) writeCategory(color, icon, text string) error {
	return c.WriteMarkup("[" + color + "]" + icon + " " + markup.Escape(text) + "[/]")
}

func (c *Console) WriteError(text string) error {
	return c.writeCategory(c.theme.Error, "✗", text)
}

func (c *Console) WriteWarning(text string) error {
	return c.writeCategory(c.theme.Warning, "!", text)
}

func (c *Console) WriteSuccess(text string) error {
	return c.writeCategory(c.theme.Success, "✓", text)
}

func (c *Console) WriteInfo(text string) error {
	return c.writeCategory(c.theme.Info, "i", text)
}

func (c *Console) WriteHeader() error {
	banner := "[bold " + c.theme.Accent + "]" + buildvars.AppName + "[/] " +
		"[" + c.theme.Muted + "]" + markup.Escape(buildvars.VersionOrDefault("dev")) + "[/]"
	if err := c.WriteMarkup(banner); err != nil {
		return err
	}
	return c.WriteRule("")
}

func (c *Console) WritePanel(title, content string) error {
	body := content
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, c.title(title), content)
	}
	box := c.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.style(c.theme.Accent).GetForeground()).
		Padding(0, 1).
		Render(body)
	return c.println(box)
}

func (c *Console) WriteRule(title string) error {
	width := c.width()
	if title == "" {
		return c.WriteMarkup("[" + c.theme.Muted + "]" + strings.Repeat("─", width) + "[/]")
	}

	title = ansi.Truncate(title, max(width-6, 1), "…")
	left := max((width-ansi.StringWidth(title)-2)/2, 1)
	right := max(width-ansi.StringWidth(title)-2-left, 1)
	return c.WriteMarkup(
		"[" + c.theme.Muted + "]" + strings.Repeat("─", left) + "[/] " +
			markup.Escape(title) +
			" [" + c.theme.Muted + "]" + strings.Repeat("─", right) + "[/]")
}

func (c *Console) WriteTable(headers []string, rows [][]string) error {
	headerStyle := c.style(c.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := c.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(c.style(c.theme.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return c.println(t.String())
}

func (c *Console) WriteGrid(fields []console.Field) error {
	labelWidth := slicest.Reduce(fields, func(f console.Field, w int) int {
		return max(w, ansi.StringWidth(f.Label))
	})
	labelStyle := c.style(c.theme.Muted).Width(labelWidth)

	lines := slicest.Map(fields, func(f console.Field) string {
		return labelStyle.Render(f.Label) + "  " + f.Value
	})
	if len(lines) == 0 {
		return nil
	}
	return c.println(strings.Join(lines, "\n"))
}

func (c *Console) Clear() error {
	_, err := c.out.Write([]byte(ansi.EraseEntireScreen + ansi.CursorHomePosition))
	return err
}
