package model

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configuration keys. They double as viper keys and YAML field names.
const (
	KeySourceRoot        = "source_root"
	KeyTestRoot          = "test_root"
	KeyTestPrefix        = "test_prefix"
	KeyLayoutKind        = "layout_kind"
	KeyRootMarkers       = "root_markers"
	KeyStopAtHome        = "stop_at_home"
	KeyRunnerCommand     = "test_runner_command"
	KeyResultRegex       = "result_regex"
	KeyRunnerTimeout     = "runner_timeout"
	KeyFilePermissions   = "file_permissions"
	KeyFolderPermissions = "folder_permissions"
)

const (
	defaultFileMode   os.FileMode = 0o644
	defaultFolderMode os.FileMode = 0o755
)

// Settings is the configuration a single resolution request works with.
// It is built fresh for every request and never mutated afterwards.
type Settings struct {
	SourceRoot        string        `mapstructure:"source_root" yaml:"source_root"`
	TestRoot          string        `mapstructure:"test_root" yaml:"test_root"`
	TestPrefix        string        `mapstructure:"test_prefix" yaml:"test_prefix"`
	Layout            LayoutKind    `mapstructure:"layout_kind" yaml:"layout_kind"`
	RootMarkers       []string      `mapstructure:"root_markers" yaml:"root_markers"`
	StopAtHome        bool          `mapstructure:"stop_at_home" yaml:"stop_at_home"`
	RunnerCommand     string        `mapstructure:"test_runner_command" yaml:"test_runner_command"`
	ResultRegex       string        `mapstructure:"result_regex" yaml:"result_regex"`
	RunnerTimeout     time.Duration `mapstructure:"runner_timeout" yaml:"runner_timeout"`
	FilePermissions   string        `mapstructure:"file_permissions" yaml:"file_permissions"`
	FolderPermissions string        `mapstructure:"folder_permissions" yaml:"folder_permissions"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SourceRoot:    "",
		TestRoot:      "tests",
		TestPrefix:    "test_",
		Layout:        LayoutFollowHierarchy,
		RootMarkers:   []string{"setup.py", ".git"},
		StopAtHome:    false,
		RunnerCommand: "python -m pytest",
		ResultRegex:   `^(?P<file>[^\s:]+\.py):(?P<line>[0-9]+):\s*(?P<message>.*)$`,
		RunnerTimeout: 10 * time.Minute,
	}
}

// Values flattens the settings into a key/value map keyed by the
// configuration keys above.
func (s Settings) Values() map[string]any {
	return map[string]any{
		KeySourceRoot:        s.SourceRoot,
		KeyTestRoot:          s.TestRoot,
		KeyTestPrefix:        s.TestPrefix,
		KeyLayoutKind:        string(s.Layout),
		KeyRootMarkers:       s.RootMarkers,
		KeyStopAtHome:        s.StopAtHome,
		KeyRunnerCommand:     s.RunnerCommand,
		KeyResultRegex:       s.ResultRegex,
		KeyRunnerTimeout:     s.RunnerTimeout,
		KeyFilePermissions:   s.FilePermissions,
		KeyFolderPermissions: s.FolderPermissions,
	}
}

// Permissions holds the modes applied to files and folders created for new
// test files.
type Permissions struct {
	File   os.FileMode
	Folder os.FileMode
}

// Permissions parses the octal permission strings. Empty strings fall back
// to 0644 for files and 0755 for folders.
func (s Settings) Permissions() (Permissions, error) {
	file, err := parseMode(s.FilePermissions, defaultFileMode)
	if err != nil {
		return Permissions{}, fmt.Errorf("%s: %w", KeyFilePermissions, err)
	}

	folder, err := parseMode(s.FolderPermissions, defaultFolderMode)
	if err != nil {
		return Permissions{}, fmt.Errorf("%s: %w", KeyFolderPermissions, err)
	}

	return Permissions{File: file, Folder: folder}, nil
}

func parseMode(value string, fallback os.FileMode) (os.FileMode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q", value)
	}

	return os.FileMode(n) & os.ModePerm, nil
}
