// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acproxycam/acproxycam/internal/config"
	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui"
	"github.com/acproxycam/acproxycam/ui/console"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&a.cfg, system)
			if err != nil {
				return err
			}
			return a.console.WriteSuccess(i18n.T("cli.config_written", path))
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			return a.console.WriteGrid([]console.Field{
				{Label: "language", Value: c.Language},
				{Label: "mode", Value: c.Mode + " (" + ui.ResolveMode(c.Mode, cmd.InOrStdin(), cmd.OutOrStdout()) + ")"},
				{Label: "color", Value: strconv.FormatBool(c.Color)},
				{Label: "spinner", Value: c.Spinner},
				{Label: "theme", Value: c.Theme.Error + " " + c.Theme.Warning + " " + c.Theme.Success + " " + c.Theme.Info + " " + c.Theme.Accent + " " + c.Theme.Muted},
				{Label: "log.level", Value: c.Log.Level},
			})
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
