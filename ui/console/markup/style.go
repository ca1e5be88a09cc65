// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package markup

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Style is the resolved style of a segment. Colours use lipgloss notation
// (ANSI index or hex); empty means the terminal default.
type Style struct {
	Foreground    string
	Background    string
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Reverse       bool
	Blink         bool
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

var namedColors = map[string]string{
	"black":   "0",
	"maroon":  "1",
	"green":   "2",
	"olive":   "3",
	"navy":    "4",
	"purple":  "5",
	"teal":    "6",
	"silver":  "7",
	"grey":    "8",
	"gray":    "8",
	"red":     "9",
	"lime":    "10",
	"yellow":  "11",
	"blue":    "12",
	"fuchsia": "13",
	"magenta": "13",
	"aqua":    "14",
	"cyan":    "14",
	"white":   "15",
	"orange":  "214",
	"default": "",
}

// apply returns s with the tokens of tag layered on top.
func (s Style) apply(tag string) (Style, error) {
	tokens := strings.Fields(strings.ToLower(tag))
	if len(tokens) == 0 {
		return s, errors.Wrap(ErrMalformed, "empty tag")
	}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "bold", "b":
			s.Bold = true
		case "dim":
			s.Dim = true
		case "italic", "i":
			s.Italic = true
		case "underline", "u":
			s.Underline = true
		case "strikethrough", "s":
			s.Strikethrough = true
		case "reverse", "invert":
			s.Reverse = true
		case "blink":
			s.Blink = true
		case "on":
			if i+1 >= len(tokens) {
				return s, errors.Wrap(ErrMalformed, "'on' without a background colour")
			}
			i++
			bg, err := ParseColor(tokens[i])
			if err != nil {
				return s, err
			}
			s.Background = bg
		default:
			fg, err := ParseColor(tok)
			if err != nil {
				return s, err
			}
			s.Foreground = fg
		}
	}
	return s, nil
}

// ParseColor resolves a colour token to lipgloss notation.
func ParseColor(tok string) (string, error) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if c, ok := namedColors[tok]; ok {
		return c, nil
	}
	if strings.HasPrefix(tok, "#") {
		hex := tok[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return "", errors.Wrapf(ErrMalformed, "bad hex colour %q", tok)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", errors.Wrapf(ErrMalformed, "bad hex colour %q", tok)
		}
		return tok, nil
	}
	if n, err := strconv.Atoi(tok); err == nil {
		if n < 0 || n > 255 {
			return "", errors.Wrapf(ErrMalformed, "colour index %d out of range", n)
		}
		return tok, nil
	}
	return "", errors.Wrapf(ErrMalformed, "unknown style or colour %q", tok)
}
