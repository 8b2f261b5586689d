package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// LocationMatcher extracts file positions from test runner output. Named
// groups file, line, column and message are used when present; otherwise
// groups 1 to 4 are read in that order.
type LocationMatcher struct {
	re      *regexp.Regexp
	workDir m.Path
	file    int
	line    int
	column  int
	message int
}

// NewLocationMatcher compiles pattern. Relative file names in matches are
// resolved against workDir. An empty pattern matches nothing.
func NewLocationMatcher(pattern string, workDir m.Path) (*LocationMatcher, error) {
	lm := &LocationMatcher{workDir: workDir}
	if strings.TrimSpace(pattern) == "" {
		return lm, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("result regex: %w", err)
	}

	lm.re = re
	lm.file, lm.line, lm.column, lm.message = 1, 2, 3, 4

	if re.SubexpIndex("file") > 0 {
		lm.file = re.SubexpIndex("file")
		lm.line = re.SubexpIndex("line")
		lm.column = re.SubexpIndex("column")
		lm.message = re.SubexpIndex("message")
	}

	return lm, nil
}

// Match returns the location reported on line, if any.
func (lm *LocationMatcher) Match(line string) (m.Location, bool) {
	if lm.re == nil {
		return m.Location{}, false
	}

	groups := lm.re.FindStringSubmatch(line)
	if groups == nil {
		return m.Location{}, false
	}

	file := group(groups, lm.file)
	if file == "" {
		return m.Location{}, false
	}

	if !filepath.IsAbs(file) && lm.workDir != "" {
		file = filepath.Join(string(lm.workDir), file)
	}

	loc := m.Location{
		File:    m.Path(file),
		Message: strings.TrimSpace(group(groups, lm.message)),
	}
	loc.Line, _ = strconv.Atoi(group(groups, lm.line))
	loc.Column, _ = strconv.Atoi(group(groups, lm.column))

	return loc, true
}

func group(groups []string, index int) string {
	if index <= 0 || index >= len(groups) {
		return ""
	}

	return groups[index]
}
