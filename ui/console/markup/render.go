// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render parses s and renders it with r. Lines are styled one by one so no
// padding is introduced between them.
func Render(r *lipgloss.Renderer, s string) (string, error) {
	segments, err := Parse(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(RenderSegment(r, seg))
	}
	return b.String(), nil
}

// MustRender is Render for markup built from constants and escaped text.
// It panics on malformed markup.
func MustRender(r *lipgloss.Renderer, s string) string {
	out, err := Render(r, s)
	if err != nil {
		panic(err)
	}
	return out
}

// RenderSegment renders a single segment.
func RenderSegment(r *lipgloss.Renderer, seg Segment) string {
	if seg.Style.IsZero() {
		return seg.Text
	}
	st := LipglossStyle(r, seg.Style).Inline(true)
	lines := strings.Split(seg.Text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// LipglossStyle converts s into a lipgloss style bound to r.
func LipglossStyle(r *lipgloss.Renderer, s Style) lipgloss.Style {
	st := r.NewStyle().
		Bold(s.Bold).
		Faint(s.Dim).
		Italic(s.Italic).
		Underline(s.Underline).
		Strikethrough(s.Strikethrough).
		Reverse(s.Reverse).
		Blink(s.Blink)
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}
