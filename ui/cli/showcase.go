// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/acproxycam/acproxycam/internal/i18n"
	"github.com/acproxycam/acproxycam/ui/console"
)

type showcaseOptions struct {
	delay time.Duration
}

// showcase writes one sample of every output primitive.
func showcase(ctx context.Context, c console.UI, opts showcaseOptions) error {
	steps := []func() error{
		c.WriteHeader,
		func() error { return c.WriteRule("Messages") },
		func() error { return c.WriteInfo("Connecting to [printer] at 192.168.1.20") },
		func() error { return c.WriteSuccess("Camera stream online") },
		func() error { return c.WriteWarning("Frame rate dropped below 10 fps") },
		func() error { return c.WriteError("Upstream closed the connection") },
		func() error { return c.WriteMarkup("[bold]Markup[/] supports [green]colours[/], [italic]attributes[/] and [[escaped]] brackets") },
		func() error { return c.WriteLine("Plain lines keep [brackets] as they are") },
		func() error { return c.WriteRule("Layout") },
		func() error {
			return c.WritePanel("Stream", "Source: mjpeg\nTarget: h264\nClients: 2")
		},
		func() error {
			return c.WriteTable(
				[]string{"Camera", "Resolution", "FPS"},
				[][]string{{"front", "1280x720", "15"}, {"nozzle", "640x480", "10"}},
			)
		},
		func() error {
			return c.WriteGrid([]console.Field{
				{Label: "Listen", Value: ":8080"},
				{Label: "Encoder", Value: "libx264"},
				{Label: "Keyframe interval", Value: "2s"},
			})
		},
		func() error {
			return c.WithStatus(ctx, "Probing stream", func(ctx context.Context) error {
				select {
				case <-time.After(opts.delay):
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		},
		func() error { return c.WriteSuccess(i18n.T("cli.demo_done")) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func newShowcaseCmd(a *app) *cobra.Command {
	var opts showcaseOptions
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render every output element once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showcase(cmd.Context(), a.console, opts)
		},
	}
	cmd.Flags().DurationVar(&opts.delay, "delay", 800*time.Millisecond, "How long the status spinner runs")
	return cmd
}
