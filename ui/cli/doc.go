// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads
// configuration, builds the console adapter and provides commands that
// exercise every console operation. Commands talk to the terminal only
// through console.UI.
package cli
