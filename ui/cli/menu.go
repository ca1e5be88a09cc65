// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/console"
)

type menuEntry struct {
	label string
	run   func() error
}

// runMenu shows the main menu until it is cancelled. The menu reopens on the
// entry that was run last.
func runMenu(cmd *cobra.Command, c console.UI, opts showcaseOptions) error {
	entries := []menuEntry{
		{"Showcase output", func() error { return showcase(cmd.Context(), c, opts) }},
		{"Try prompts", func() error { return promptTour(c) }},
		{"Read a key", func() error {
			if err := c.WriteInfo("Press any key"); err != nil {
				return err
			}
			k, err := c.ReadKey()
			if err != nil {
				return err
			}
			return c.WriteLine("You pressed " + k)
		}},
		{"Clear screen", c.Clear},
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	last := 0
	for {
		choice, err := c.SelectOneWithEscapeAndIndex(i18n.T("cli.menu_title"), labels, last)
		if err != nil {
			return err
		}
		if choice.Cancelled() {
			return c.WriteInfo(i18n.T("cli.menu_left"))
		}
		last = choice.Index
		if err := entries[choice.Index].run(); err != nil {
			return err
		}
		if err := c.WaitForKey(i18n.T("wait.any_key")); err != nil {
			return err
		}
	}
}

func newMenuCmd(a *app) *cobra.Command {
	var opts showcaseOptions
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the main menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, a.console, opts)
		},
	}
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "How long the showcase status spinner runs")
	return cmd
}
