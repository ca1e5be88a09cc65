// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tricky = []string{
	"",
	"plain",
	"[red]not a tag[/]",
	"[[already doubled]]",
	"]",
	"[",
	"a[]]b",
	"list[0] = x[1][2]",
	"[/]",
	"ünïcödé [✓]",
}

func TestEscape_RoundTrips(t *testing.T) {
	for _, s := range tricky {
		assert.Equal(t, s, Unescape(Escape(s)), "Unescape(Escape(%q))", s)
		stripped, err := Strip(Escape(s))
		require.NoError(t, err, "Strip(Escape(%q))", s)
		assert.Equal(t, s, stripped)
	}
}

func TestParse_Nesting(t *testing.T) {
	segs, err := Parse("a[bold]b[red]c[/]d[/]e")
	require.NoError(t, err)
	require.Len(t, segs, 5)

	assert.Equal(t, "a", segs[0].Text)
	assert.True(t, segs[0].Style.IsZero())
	assert.Equal(t, "b", segs[1].Text)
	assert.True(t, segs[1].Style.Bold)
	assert.Equal(t, "c", segs[2].Text)
	assert.True(t, segs[2].Style.Bold, "inner tag inherits outer style")
	assert.Equal(t, "9", segs[2].Style.Foreground)
	assert.Equal(t, "d", segs[3].Text)
	assert.Empty(t, segs[3].Style.Foreground)
	assert.Equal(t, "e", segs[4].Text)
}

func TestParse_Colours(t *testing.T) {
	segs, err := Parse("[#ff8800 on navy underline]x[/][208]y[/]")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, Style{Foreground: "#ff8800", Background: "4", Underline: true}, segs[0].Style)
	assert.Equal(t, "208", segs[1].Style.Foreground)
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{
		"[red]unclosed",
		"closing without open[/]",
		"stray ] bracket",
		"[unterminated",
		"[]empty tag",
		"[sparkly]x[/]",
		"[on]x[/]",
		"[#12]x[/]",
		"[300]x[/]",
	} {
		_, err := Parse(s)
		require.Error(t, err, "Parse(%q)", s)
		assert.True(t, errors.Is(err, ErrMalformed), "Parse(%q) error %v should wrap ErrMalformed", s, err)
	}
}

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestRender_AsciiProfileKeepsLiteralText(t *testing.T) {
	for _, s := range tricky {
		out, err := Render(asciiRenderer(), "[red]"+Escape(s)+"[/]")
		require.NoError(t, err)
		assert.Equal(t, s, ansi.Strip(out))
	}
}

func TestRender_ColourProfileEmitsSequences(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI256)

	out, err := Render(r, "[bold red]hot[/] cold")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, "hot cold", ansi.Strip(out))
}

func TestRender_MultilineHasNoPadding(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI256)

	out, err := Render(r, "[green]a\nlonger line[/]")
	require.NoError(t, err)
	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Equal(t, []string{"a", "longer line"}, lines)
}

func TestMustRender_Panics(t *testing.T) {
	assert.Panics(t, func() { MustRender(asciiRenderer(), "[red]") })
}
