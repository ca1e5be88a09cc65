// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package rich

import (
	"context"

	"github.com/acproxycam/acproxycam/internal/logging"
	"github.com/acproxycam/acproxycam/ui/tui/models/views/prompt"
)

// WithStatus runs fn in its own goroutine while a spinner program renders
// status. The spinner is gone from the screen before WithStatus returns. A
// panic in fn is re-raised here once the spinner has stopped.
func (c *Console) WithStatus(ctx context.Context, status string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		fnErr    error
		panicked any
		done     = make(chan struct{})
	)
	go func() {
		defer close(done)
		defer func() {
			panicked = recover()
		}()
		fnErr = fn(ctx)
	}()

	m := prompt.NewStatus(c.title(status), c.spinner, done, c.promptStyles())
	_, runErr := c.run(m)

	// the program may end early on ctrl+c or a terminal error
	cancel()
	<-done

	if panicked != nil {
		panic(panicked)
	}
	if fnErr != nil {
		return fnErr
	}
	if runErr != nil {
		logging.Debugf("status program for %q: %v", status, runErr)
		return runErr
	}
	if m.Interrupted() || !m.Done() {
		return ErrInterrupted
	}
	return nil
}
