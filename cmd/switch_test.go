package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pyunit.dev/pkg/pyunit/internal/domain"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

func TestSwitchCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newSwitchCmd())
	file := filepath.Join(t.TempDir(), "pkg", "mod.py")

	mockWorkflow.EXPECT().Switch(mock.Anything, mock.MatchedBy(func(args domain.SwitchArgs) bool {
		return args.File == m.Path(file) &&
			args.AssumeYes &&
			args.Settings.Layout == m.LayoutNose &&
			args.Settings.TestRoot == "checks" &&
			args.Settings.TestPrefix == "check_" &&
			assert.ObjectsAreEqual([]string{m.KeyLayoutKind, m.KeyTestPrefix, m.KeyTestRoot}, args.Pinned)
	})).Return(m.Path(""), nil).Once()

	cmd.SetArgs([]string{"switch", "--yes", "--layout", "nose", "--test-root", "checks", "--prefix", "check_", file})
	require.NoError(t, cmd.Execute())
}

func TestSwitchCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newSwitchCmd())
	file := filepath.Join(t.TempDir(), "mod.py")

	mockWorkflow.EXPECT().Switch(mock.Anything, mock.MatchedBy(func(args domain.SwitchArgs) bool {
		return !args.AssumeYes &&
			len(args.Pinned) == 0 &&
			args.Settings.Layout == m.LayoutFollowHierarchy &&
			assert.ObjectsAreEqual([]string{"setup.py", ".git"}, args.Settings.RootMarkers)
	})).Return(m.Path(""), nil).Once()

	cmd.SetArgs([]string{"switch", file})
	require.NoError(t, cmd.Execute())
}

func TestSwitchCmd_Error(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newSwitchCmd())

	mockWorkflow.EXPECT().Switch(mock.Anything, mock.Anything).
		Return(m.Path(""), domain.ErrRootNotFound).Once()

	cmd.SetArgs([]string{"switch", "mod.py"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRootNotFound))
}

func TestSwitchCmd_RequiresFile(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newSwitchCmd())

	cmd.SetArgs([]string{"switch"})
	require.Error(t, cmd.Execute())
}
