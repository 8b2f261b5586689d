package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// ProjectConfigFileName is the per-project settings file looked up in the
// project root.
const ProjectConfigFileName = ".pyunit.yaml"

// SettingsStore layers project-scoped settings over the global ones.
type SettingsStore interface {
	// Overlay returns base with every key set in the project's settings file
	// replaced, except the pinned keys, which keep their base values. A
	// project without a settings file yields base unchanged.
	Overlay(base m.Settings, projectRoot m.Path, pinned []string) (m.Settings, error)
}

// ViperSettingsStore reads project settings files with a private viper
// instance so the global configuration is never touched.
type ViperSettingsStore struct {
	fileName string
}

// NewViperSettingsStore constructs a store reading fileName from project roots.
func NewViperSettingsStore(fileName string) *ViperSettingsStore {
	if fileName == "" {
		fileName = ProjectConfigFileName
	}

	return &ViperSettingsStore{fileName: fileName}
}

// Overlay merges the project settings file, if any, over base.
func (s *ViperSettingsStore) Overlay(base m.Settings, projectRoot m.Path, pinned []string) (m.Settings, error) {
	path := filepath.Join(string(projectRoot), s.fileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}

		return base, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	values := base.Values()
	for key, value := range values {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}

	for _, key := range pinned {
		if value, ok := values[key]; ok {
			v.Set(key, value)
		}
	}

	var merged m.Settings
	if err := v.Unmarshal(&merged); err != nil {
		return base, fmt.Errorf("decode %s: %w", path, err)
	}

	slog.Debug("applied project settings", "path", path, "layout", merged.Layout)

	return merged, nil
}
