package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproxycam/acproxycam/ui/console"
	"github.com/acproxycam/acproxycam/ui/console/markup"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(WithInput(strings.NewReader(input)), WithOutput(&out)), &out
}

func TestOutput_PlainText(t *testing.T) {
	c, out := newTestConsole("")
	require.NoError(t, c.WriteError("[bold]x[/]"))
	require.NoError(t, c.WriteSuccess("done"))
	require.NoError(t, c.WriteMarkup("[red]alert[/] [[raw]]"))
	assert.Equal(t, "✗ [bold]x[/]\n✓ done\nalert [raw]\n", out.String())

	assert.ErrorIs(t, c.WriteMarkup("[red"), markup.ErrMalformed)
}

func TestWriteTable(t *testing.T) {
	c, out := newTestConsole("")
	require.NoError(t, c.WriteTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}}))

	s := out.String()
	assert.Contains(t, s, "A")
	assert.Contains(t, s, "B")
	assert.Less(t, strings.Index(s, "1"), strings.Index(s, "3"))
}

func TestWriteGrid(t *testing.T) {
	c, out := newTestConsole("")
	require.NoError(t, c.WriteGrid([]console.Field{{Label: "Host", Value: "cam1"}, {Label: "Port", Value: "554"}, {Label: "Codec", Value: "h264"}}))
	assert.Equal(t, "Host   cam1\nPort   554\nCodec  h264\n", out.String())
}

func TestWriteRule(t *testing.T) {
	c, out := newTestConsole("")
	require.NoError(t, c.WriteRule(""))
	require.NoError(t, c.WriteRule("Cams"))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines[0], ruleWidth)
	assert.Len(t, lines[1], ruleWidth)
	assert.True(t, strings.HasPrefix(lines[1], "-- Cams -"))
}

func TestAsk(t *testing.T) {
	c, out := newTestConsole("\ncam\n\n")
	v, err := c.Ask("Name?")
	require.NoError(t, err)
	assert.Equal(t, "cam", v)
	assert.Contains(t, out.String(), "A value is required.")

	v, err = c.Ask("Port?", console.WithDefault("8080"))
	require.NoError(t, err)
	assert.Equal(t, "8080", v)
	assert.Contains(t, out.String(), "Port? (8080): ")
}

func TestAskInt(t *testing.T) {
	c, out := newTestConsole("ten\n 10 \n")
	n, err := c.AskInt("Count?")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Contains(t, out.String(), "Please enter a whole number.")
}

func TestAskSecret(t *testing.T) {
	c, out := newTestConsole("s3cret\nnext\n")
	v, err := c.AskSecret("Password?")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)
	assert.NotContains(t, out.String(), "s3cret")

	v, err = c.Ask("After?")
	require.NoError(t, err)
	assert.Equal(t, "next", v)
}

func TestAskSecret_CRLF(t *testing.T) {
	c, _ := newTestConsole("s3cret\r\nn\r\n")
	v, err := c.AskSecret("Password?")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	ok, err := c.Confirm("Save?", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirm(t *testing.T) {
	c, out := newTestConsole("\nmaybe\nn\nYES\n")

	ok, err := c.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Please answer y or n.")

	ok, err = c.Confirm("Proceed?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAskOptional(t *testing.T) {
	c, _ := newTestConsole("<esc>\n\x1b\n\nvalue\n")

	for _, want := range []console.Answer{
		console.CancelledAnswer,
		console.CancelledAnswer,
		console.EmptyAnswer,
		{Kind: console.AnswerValue, Value: "value"},
	} {
		a, err := c.AskOptional("Note?")
		require.NoError(t, err)
		assert.Equal(t, want, a)
	}
}

func TestSelectOne(t *testing.T) {
	c, _ := newTestConsole("<esc>\n9\nb\n")
	v, err := c.SelectOne("Pick", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = c.SelectOne("Pick", nil)
	assert.ErrorIs(t, err, console.ErrNoChoices)
}

func TestSelectOneWithEscapeAndIndex(t *testing.T) {
	choices := []string{"a", "b", "c"}
	c, out := newTestConsole("\n<esc>\n2\n")

	ch, err := c.SelectOneWithEscapeAndIndex("Pick", choices, 2)
	require.NoError(t, err)
	assert.Equal(t, console.Choice{Index: 2, Label: "c"}, ch)
	assert.Contains(t, out.String(), "  3) c")

	ch, err = c.SelectOneWithEscapeAndIndex("Pick", choices, 0)
	require.NoError(t, err)
	assert.Equal(t, console.NoChoice, ch)

	ch, err = c.SelectOneWithEscape("Pick", choices)
	require.NoError(t, err)
	assert.Equal(t, console.Choice{Index: 1, Label: "b"}, ch)
}

func TestSelectOneWithEscape_EmptyListOnlyCancels(t *testing.T) {
	c, _ := newTestConsole("\n1\n<esc>\n")
	ch, err := c.SelectOneWithEscape("Pick", nil)
	require.NoError(t, err)
	assert.True(t, ch.Cancelled())
}

func TestSelectMany(t *testing.T) {
	c, out := newTestConsole("1,x\n3, 1,3\n\n")
	v, err := c.SelectMany("Pick", []string{"a", "b", "c"}, console.WithInstructions("comma separated"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, v)
	assert.Contains(t, out.String(), "comma separated")

	v, err = c.SelectMany("Pick", []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestKeys(t *testing.T) {
	c, out := newTestConsole("\n\nq\n<esc>\n")
	require.NoError(t, c.WaitForKey("Press enter"))
	assert.Contains(t, out.String(), "Press enter")

	for _, want := range []string{"enter", "q", "esc"} {
		k, err := c.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}
}

func TestEOFIsReturnedUnchanged(t *testing.T) {
	c, _ := newTestConsole("")
	_, err := c.Ask("Name?")
	assert.Same(t, io.EOF, err)

	_, err = c.SelectOneWithEscape("Pick", []string{"a"})
	assert.ErrorIs(t, err, io.EOF)

	// a last line without newline is still an answer
	c, _ = newTestConsole("cam")
	v, err := c.Ask("Name?")
	require.NoError(t, err)
	assert.Equal(t, "cam", v)
}

func TestWithStatus(t *testing.T) {
	c, out := newTestConsole("")
	boom := errors.New("camera offline")
	err := c.WithStatus(context.Background(), "Connecting", func(context.Context) error { return boom })
	assert.Same(t, boom, err)
	assert.Equal(t, "Connecting...\n", out.String())

	assert.PanicsWithValue(t, "lens cracked", func() {
		_ = c.WithStatus(context.Background(), "Connecting", func(context.Context) error { panic("lens cracked") })
	})
}
