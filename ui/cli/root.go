// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// root.go sets up the root command, its persistent flags and the shared
// start-up path (config, logging, i18n, console) every subcommand runs.

package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/acproxycam/acproxycam/internal/config"
	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui"
	"github.com/acproxycam/acproxycam/ui/console"
)

// app is the state shared by the commands of one root command instance.
type app struct {
	cfg     config.Config
	console console.UI
	verbose bool
}

// setup loads configuration and builds the console. It runs before every
// subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	// A missing file is normal before `config init`; the defaults apply.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return errors.Wrap(err, "error loading config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	i18n.Init(cfg.Language)

	c, err := ui.NewConsole(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.cfg, a.console = cfg, c
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "could not read --config flag")
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "config file specified via --config flag not found or is not accessible")
	}
	return &path, nil
}

// NewRootCmd creates a fresh root command. Tests build one per case.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "acproxycam",
		Short: "ACProxyCam console toolkit",
		Long: `ACProxyCam talks to the terminal through one console interface with a
rich adapter for interactive terminals and a headless adapter for pipes
and automation.

Running without a subcommand opens the main menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, a.console, showcaseOptions{})
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Console language ("en", "de")`)
	cmd.PersistentFlags().String("mode", config.ModeAuto, `Console mode ("auto", "rich", "headless")`)
	cmd.PersistentFlags().Bool("color", true, "Use colours in rich mode")

	cmd.AddCommand(
		newShowcaseCmd(a),
		newPromptsCmd(a),
		newMenuCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI entrypoint. The main package prints the returned
// error and sets the exit code.
func Execute() error {
	return NewRootCmd().Execute()
}
