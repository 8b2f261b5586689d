package controller

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI, "terminal should get the TUI")

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple, "pipes should get the SimpleUI")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	assert.False(t, IsTTY(f), "regular files are not terminals")
}
