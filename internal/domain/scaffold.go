package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

const scaffoldTemplate = "import unittest\n" +
	"from %s import *\n\n" +
	"\n\nif __name__ == '__main__':\n    unittest.main()\n"

// TestScaffold returns the initial content of a new test file for source.
func TestScaffold(source m.Path) []byte {
	module := strings.TrimSuffix(filepath.Base(string(source)), SourceExt)
	return []byte(fmt.Sprintf(scaffoldTemplate, module))
}
