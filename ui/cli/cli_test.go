package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproxycam/acproxycam/buildvars"
)

// isolate points every config location at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--mode", "headless"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShowcase(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "showcase", "--delay", "0s")
	require.NoError(t, err)

	assert.Contains(t, out, "ACProxyCam")
	assert.Contains(t, out, "✗ Upstream closed the connection")
	assert.Contains(t, out, "i Connecting to [printer] at 192.168.1.20")
	assert.Contains(t, out, "Markup supports colours, attributes and [escaped] brackets")
	assert.Contains(t, out, "Plain lines keep [brackets] as they are")
	assert.Contains(t, out, "nozzle")
	assert.Contains(t, out, "Probing stream...")
	assert.Contains(t, out, "Demo finished.")
}

func TestPrompts(t *testing.T) {
	isolate(t)
	input := strings.Join([]string{
		"",          // name -> default
		"x", "9000", // port, rejected then accepted
		"tok",   // secret
		"<esc>", // note cancelled
		"2",     // encoder
		"4,1",   // outputs
		"n",     // save
	}, "\n") + "\n"

	out, err := run(t, input, "prompts")
	require.NoError(t, err)

	assert.Contains(t, out, "Please enter a whole number.")
	assert.NotContains(t, out, "tok\n")
	assert.Contains(t, out, "Name     ender3")
	assert.Contains(t, out, "Port     9000")
	assert.Contains(t, out, "Token    ***")
	assert.Contains(t, out, "Note     (cancelled)")
	assert.Contains(t, out, "Encoder  h264_v4l2m2m")
	assert.Contains(t, out, "Outputs  mjpeg, snapshot")
	assert.Contains(t, out, "Save     false")
}

func TestMenu_ReopensAtLastEntryUntilCancelled(t *testing.T) {
	isolate(t)
	input := strings.Join([]string{
		"3",     // read a key
		"q",     // the key
		"",      // wait for key
		"",      // empty answer reopens on "Read a key"
		"z",     // the key
		"",      // wait for key
		"<esc>", // leave
	}, "\n") + "\n"

	out, err := run(t, input, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "You pressed q")
	assert.Contains(t, out, "You pressed z")
	assert.Contains(t, out, "Enter choice number [3]")
	assert.Contains(t, out, "Menu closed.")
}

func TestMenu_EOFStops(t *testing.T) {
	isolate(t)
	_, err := run(t, "")
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	home := isolate(t)

	out, err := run(t, "", "--language", "de", "config", "init")
	require.NoError(t, err)
	path := filepath.Join(home, "acproxycam", "acproxycam.yaml")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "language: de")

	// the written file is picked up, flags still win over it
	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "language   de")
	assert.Contains(t, out, "mode       headless (headless)")

	t.Setenv("ACPROXYCAM_SPINNER", "moon")
	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "spinner    moon")
}

func TestInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("ACPROXYCAM_SPINNER", "nope")
	_, err := run(t, "", "config", "show")
	assert.ErrorContains(t, err, "unknown spinner")
}

func TestConfigFlag_MissingFile(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "--config", "/does/not/exist.yaml", "config", "show")
	assert.ErrorContains(t, err, "--config")
}

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "version: ")
	assert.Contains(t, out.String(), "commit: ")
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	assert.Equal(t, "v1.2.3", v)
	assert.Equal(t, "dev", c)
	assert.Equal(t, buildDate, d)
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v1.5.1-0.20251130131337-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	assert.Equal(t, "v1.5.1-0.20251130131337-d1692e4643ee", v)
}

func TestResolveBuildVersion_CommitFallback(t *testing.T) {
	orig := buildvars.Commit
	t.Cleanup(func() { buildvars.Commit = orig })
	buildvars.Commit = "deadbeef"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
	}
	v, c, _ := resolveBuildVersion(info)
	assert.Equal(t, "deadbeef", v)
	assert.Equal(t, "deadbeef", c)
}

func TestResolveBuildVersion_LinkedVersionWins(t *testing.T) {
	orig := buildvars.Version
	t.Cleanup(func() { buildvars.Version = orig })
	buildvars.Version = "v2.0.0"

	v, _, _ := resolveBuildVersion(&debug.BuildInfo{Main: debug.Module{Version: "v1.0.0"}})
	assert.Equal(t, "v2.0.0", v)
}
