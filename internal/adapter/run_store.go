package adapter

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// ErrNoRunRecorded is returned by RunStore.Last for a project without a
// recorded run.
var ErrNoRunRecorded = errors.New("no test run recorded for this project")

// RunStore remembers the last test run of each project.
type RunStore interface {
	Save(root m.Path, result m.RunResult) error
	Last(root m.Path) (m.RunResult, error)
}

// runHeader precedes the spilled locations of one run.
type runHeader struct {
	Command  string
	WorkDir  string
	ExitCode int
	Elapsed  time.Duration
	Count    uint64
}

// GobRunStore spills runs to one gob stream per project: a header followed
// by each location as its own record.
type GobRunStore struct {
	dir string
}

// NewGobRunStore stores runs under dir, the user cache directory when empty.
func NewGobRunStore(dir string) *GobRunStore {
	if dir == "" {
		if cache, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(cache, "pyunit", "runs")
		} else {
			dir = filepath.Join(os.TempDir(), "pyunit-runs")
		}
	}

	return &GobRunStore{dir: dir}
}

func (s *GobRunStore) path(root m.Path) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:8])+".gob")
}

// Save replaces the recorded run of root.
func (s *GobRunStore) Save(root m.Path, result m.RunResult) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create run store directory: %w", err)
	}

	file, err := os.CreateTemp(s.dir, "run-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmp := file.Name()
	if err := spillRun(file, result); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)

		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	target := s.path(root)
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to store run: %w", err)
	}

	slog.Debug("stored test run", "root", root, "path", target, "locations", len(result.Locations))

	return nil
}

func spillRun(file *os.File, result m.RunResult) error {
	encoder := gob.NewEncoder(file)

	header := runHeader{
		Command:  result.Command,
		WorkDir:  string(result.WorkDir),
		ExitCode: result.ExitCode,
		Elapsed:  result.Elapsed,
		Count:    uint64(len(result.Locations)),
	}
	if err := encoder.Encode(header); err != nil {
		return fmt.Errorf("failed to encode run header: %w", err)
	}

	for i, loc := range result.Locations {
		if err := encoder.Encode(loc); err != nil {
			return fmt.Errorf("failed to encode location %d: %w", i, err)
		}
	}

	return nil
}

// Last returns the recorded run of root.
func (s *GobRunStore) Last(root m.Path) (m.RunResult, error) {
	path := s.path(root)

	// #nosec G304 - path is derived from a hash inside the store directory
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return m.RunResult{}, fmt.Errorf("%w: %s", ErrNoRunRecorded, root)
	}

	if err != nil {
		return m.RunResult{}, fmt.Errorf("failed to open run record: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var header runHeader
	if err := decoder.Decode(&header); err != nil {
		return m.RunResult{}, fmt.Errorf("failed to decode run header: %w", err)
	}

	result := m.RunResult{
		Command:  header.Command,
		WorkDir:  m.Path(header.WorkDir),
		ExitCode: header.ExitCode,
		Elapsed:  header.Elapsed,
	}

	for i := range header.Count {
		var loc m.Location
		if err := decoder.Decode(&loc); err != nil {
			return m.RunResult{}, fmt.Errorf("failed to decode location %d: %w", i, err)
		}

		result.Locations = append(result.Locations, loc)
	}

	return result, nil
}
