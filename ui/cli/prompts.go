// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acproxycam/acproxycam/ui/console"
)

// promptTour asks one question of every kind and prints the answers.
func promptTour(c console.UI) error {
	name, err := c.Ask("Printer name", console.WithDefault("ender3"))
	if err != nil {
		return err
	}
	port, err := c.AskInt("Listen port", console.WithDefaultInt(8080))
	if err != nil {
		return err
	}
	token, err := c.AskSecret("Access token")
	if err != nil {
		return err
	}
	note, err := c.AskOptional("Note")
	if err != nil {
		return err
	}
	encoder, err := c.SelectOne("Encoder", []string{"libx264", "h264_v4l2m2m", "copy"})
	if err != nil {
		return err
	}
	outputs, err := c.SelectMany("Outputs", []string{"mjpeg", "rtsp", "hls", "snapshot"})
	if err != nil {
		return err
	}
	save, err := c.Confirm("Save these settings?", true)
	if err != nil {
		return err
	}

	noteText := note.Value
	if note.Cancelled() || note.Empty() {
		noteText = "(" + note.Kind.String() + ")"
	}

	return c.WriteGrid([]console.Field{
		{Label: "Name", Value: name},
		{Label: "Port", Value: strconv.Itoa(port)},
		{Label: "Token", Value: strings.Repeat("*", len(token))},
		{Label: "Note", Value: noteText},
		{Label: "Encoder", Value: encoder},
		{Label: "Outputs", Value: strings.Join(outputs, ", ")},
		{Label: "Save", Value: strconv.FormatBool(save)},
	})
}

func newPromptsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "Walk through every prompt type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return promptTour(a.console)
		},
	}
}
