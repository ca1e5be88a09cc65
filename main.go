// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for ACProxyCam.
//
// Usage:
//
//	go run . [flags]
//	./acproxycam [flags]
//
// See --help for options.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/acproxycam/acproxycam/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "acproxycam: %v\n", err)
		os.Exit(1)
	}
}
