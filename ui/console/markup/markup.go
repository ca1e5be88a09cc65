// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package markup implements the console styling language:
//
//	[bold red]error:[/] disk [[sda]] is full
//
// A tag opens with a space-separated style list in square brackets and is
// closed by [/], which pops the most recently opened tag. Tags nest; inner
// styles inherit from outer ones. Literal brackets are written doubled.
//
// Style tokens are attributes (bold, dim, italic, underline, strikethrough,
// reverse, blink), colour names, ANSI indexes (0-255), hex colours (#rgb,
// #rrggbb) and "on <colour>" for the background.
package markup

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformed is the base error for every markup syntax problem.
var ErrMalformed = errors.New("malformed markup")

// Escape doubles square brackets so s renders literally.
func Escape(s string) string {
	if !strings.ContainsAny(s, "[]") {
		return s
	}
	s = strings.ReplaceAll(s, "[", "[[")
	return strings.ReplaceAll(s, "]", "]]")
}

// Unescape reverses Escape.
func Unescape(s string) string {
	if !strings.ContainsAny(s, "[]") {
		return s
	}
	s = strings.ReplaceAll(s, "[[", "[")
	return strings.ReplaceAll(s, "]]", "]")
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style Style
}

// Parse splits s into styled segments. Adjacent text with the same style is
// merged; empty segments are dropped.
func Parse(s string) ([]Segment, error) {
	var (
		segments []Segment
		stack    []Style
		current  Style
		text     strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Style == current {
			segments[n-1].Text += text.String()
		} else {
			segments = append(segments, Segment{Text: text.String(), Style: current})
		}
		text.Reset()
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '[':
			if i+1 < len(s) && s[i+1] == '[' {
				text.WriteByte('[')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], ']')
			if end < 0 {
				return nil, errors.Wrapf(ErrMalformed, "unterminated tag at position %d", i)
			}
			tag := s[i+1 : i+1+end]
			flush()
			if tag == "/" {
				if len(stack) == 0 {
					return nil, errors.Wrapf(ErrMalformed, "closing tag at position %d without an open tag", i)
				}
				current, stack = stack[len(stack)-1], stack[:len(stack)-1]
			} else {
				next, err := current.apply(tag)
				if err != nil {
					return nil, errors.Wrapf(err, "tag at position %d", i)
				}
				stack = append(stack, current)
				current = next
			}
			i += end + 1
		case ']':
			if i+1 < len(s) && s[i+1] == ']' {
				text.WriteByte(']')
				i++
				continue
			}
			return nil, errors.Wrapf(ErrMalformed, "unescaped ']' at position %d", i)
		default:
			text.WriteByte(c)
		}
	}
	if len(stack) > 0 {
		return nil, errors.Wrapf(ErrMalformed, "%d unclosed tag(s)", len(stack))
	}
	flush()
	return segments, nil
}

// Strip returns the text of s with all tags removed and escapes resolved.
func Strip(s string) (string, error) {
	segments, err := Parse(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String(), nil
}
