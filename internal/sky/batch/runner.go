// Package batch runs an analysis pass over a directory of numbered input
// files, the layout used for the level fixtures:
//
//	<dir>/level-N/lvlN-K.inp  ->  <dir>/level-N/levN-K.out
package batch

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/banshee-data/asteroid.report/internal/fsutil"
	"github.com/banshee-data/asteroid.report/internal/monitoring"
	"github.com/banshee-data/asteroid.report/internal/sky/pipeline"
)

// Runner processes level directories through an Analyzer.
type Runner struct {
	FS       fsutil.FileSystem
	Analyzer *pipeline.Analyzer
}

// NewRunner returns a Runner on the real filesystem.
func NewRunner(a *pipeline.Analyzer) *Runner {
	return &Runner{FS: fsutil.OSFileSystem{}, Analyzer: a}
}

// LevelDir returns the directory holding the cases for level.
func LevelDir(dir string, level pipeline.Level) string {
	return filepath.Join(dir, fmt.Sprintf("level-%d", int(level)))
}

// InputPath returns the input file of case k.
func InputPath(dir string, level pipeline.Level, k int) string {
	return filepath.Join(LevelDir(dir, level), fmt.Sprintf("lvl%d-%d.inp", int(level), k))
}

// OutputPath returns the output file of case k.
func OutputPath(dir string, level pipeline.Level, k int) string {
	return filepath.Join(LevelDir(dir, level), fmt.Sprintf("lev%d-%d.out", int(level), k))
}

var caseNumber = regexp.MustCompile(`-(\d+)\.inp$`)

// Cases lists the case numbers present for level in ascending order.
func (r *Runner) Cases(dir string, level pipeline.Level) ([]int, error) {
	pattern := filepath.Join(LevelDir(dir, level), fmt.Sprintf("lvl%d-*.inp", int(level)))
	names, err := r.FS.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	var out []int
	for _, name := range names {
		m := caseNumber.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		k, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, k)
	}
	sort.Ints(out)
	return out, nil
}

// RunCase analyses one input file and returns its text output.
func (r *Runner) RunCase(dir string, level pipeline.Level, k int) (string, error) {
	in := InputPath(dir, level, k)
	data, err := r.FS.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", in, err)
	}
	out, err := r.Analyzer.RunLevel(level, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", in, err)
	}
	return out, nil
}

// Run processes cases 0..count-1 and writes each output file. A count of
// zero or less processes every case found on disk. It stops at the first
// failure and returns the paths written so far.
func (r *Runner) Run(dir string, level pipeline.Level, count int) ([]string, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("unsupported level %d", int(level))
	}

	var cases []int
	if count > 0 {
		for k := 0; k < count; k++ {
			cases = append(cases, k)
		}
	} else {
		found, err := r.Cases(dir, level)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no inputs for level %d under %s", int(level), dir)
		}
		cases = found
	}

	var written []string
	for _, k := range cases {
		out, err := r.RunCase(dir, level, k)
		if err != nil {
			return written, err
		}
		path := OutputPath(dir, level, k)
		if err := r.FS.WriteFile(path, []byte(out), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		monitoring.Logf("batch: level %d case %d -> %s (%d lines)", int(level), k, path, strings.Count(out, "\n"))
		written = append(written, path)
	}
	return written, nil
}

// MismatchError reports a case whose output differs from the expected text.
type MismatchError struct {
	Level    pipeline.Level
	Case     int
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%q case %d: output mismatch\nexpected:\n%s\nactual:\n%s",
		e.Level.String(), e.Case, e.Expected, e.Actual)
}

// Expect runs case k and compares its output with expected, ignoring
// surrounding whitespace.
func (r *Runner) Expect(dir string, level pipeline.Level, k int, expected string) error {
	out, err := r.RunCase(dir, level, k)
	if err != nil {
		return err
	}
	want, got := strings.TrimSpace(expected), strings.TrimSpace(out)
	if want != got {
		return &MismatchError{Level: level, Case: k, Expected: want, Actual: got}
	}
	return nil
}
