package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pyunit.dev/pkg/pyunit/internal/domain"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

func TestConfigCmd_PrintsEffectiveSettings(t *testing.T) {
	cmd, mockWorkflow, out := newTestRootCmd(t, newConfigCmd())

	effective := m.DefaultSettings()
	effective.Layout = m.LayoutFlat
	effective.SourceRoot = "src"

	mockWorkflow.EXPECT().EffectiveSettings(mock.Anything, mock.Anything).
		Return(effective, m.Path("/proj"), nil).Once()

	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "# project root: /proj\n")

	var decoded m.Settings
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, effective, decoded)
}

func TestConfigCmd_OutsideProject(t *testing.T) {
	cmd, mockWorkflow, out := newTestRootCmd(t, newConfigCmd())

	mockWorkflow.EXPECT().EffectiveSettings(mock.Anything, mock.Anything).
		Return(m.Settings{}, m.Path(""), domain.ErrRootNotFound).Once()

	cmd.SetArgs([]string{"config", "--layout", "nose"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "no project root found")
	assert.Contains(t, out.String(), "layout_kind: nose")
}
