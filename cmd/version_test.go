package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "pyunit version")
	assert.Contains(t, output, "go version")
	assert.Contains(t, output, "side-by-side, flat, follow-hierarchy, nose")
	assert.Contains(t, output, "config file")
}

func TestVersionLines(t *testing.T) {
	t.Run("build info and config file", func(t *testing.T) {
		info := &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}}

		lines := versionLines(info, "/home/u/.config/pyunit/pyunit.yaml")
		require.Len(t, lines, 4)
		assert.Equal(t, "pyunit version\t v0.3.0", lines[0])
		assert.Equal(t, "go version\t go1.25.1", lines[1])
		assert.Equal(t, "config file\t /home/u/.config/pyunit/pyunit.yaml", lines[3])
	})

	t.Run("missing build info", func(t *testing.T) {
		lines := versionLines(nil, "")
		require.Len(t, lines, 4)
		assert.Equal(t, "pyunit version\t unknown", lines[0])
		assert.Equal(t, "go version\t unknown", lines[1])
		assert.Equal(t, "config file\t none (built-in defaults)", lines[3])
	})
}
