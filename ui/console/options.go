// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package console

import "strconv"

// PromptConfig is the resolved form of a PromptOption list. Adapters call
// NewPromptConfig; callers use the With* helpers.
type PromptConfig struct {
	Default    string
	HasDefault bool
}

type PromptOption func(*PromptConfig)

// WithDefault makes v the answer for empty input and shows it as a hint.
func WithDefault(v string) PromptOption {
	return func(c *PromptConfig) {
		c.Default, c.HasDefault = v, true
	}
}

// WithDefaultInt is WithDefault for AskInt.
func WithDefaultInt(n int) PromptOption {
	return WithDefault(strconv.Itoa(n))
}

func NewPromptConfig(opts ...PromptOption) PromptConfig {
	var c PromptConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SelectConfig is the resolved form of a SelectOption list.
type SelectConfig struct {
	Instructions string
	PageSize     int
}

type SelectOption func(*SelectConfig)

// WithInstructions replaces the caption shown under a multi-select menu.
func WithInstructions(text string) SelectOption {
	return func(c *SelectConfig) {
		c.Instructions = text
	}
}

// WithPageSize limits how many choices are visible at once.
func WithPageSize(n int) SelectOption {
	return func(c *SelectConfig) {
		c.PageSize = n
	}
}

// DefaultPageSize is the number of visible choices when none is configured.
const DefaultPageSize = 10

func NewSelectConfig(opts ...SelectOption) SelectConfig {
	c := SelectConfig{PageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return c
}

// ClampIndex pins i into [0, n). It returns 0 for an empty list.
func ClampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
