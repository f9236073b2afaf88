package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/asteroid.report/internal/monitoring"
	"github.com/banshee-data/asteroid.report/internal/sky/pipeline"
	"github.com/banshee-data/asteroid.report/internal/testutil"
)

// execute runs a fresh command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	original := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() {
		monitoring.Logf = original
		monitoring.SetDebug(false)
	})

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestRootCommand_Subcommands(t *testing.T) {
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"detect", "cluster", "periodic", "batch", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestLevelCommands_Text(t *testing.T) {
	dir := t.TempDir()
	level2 := writeFile(t, dir, "level2.inp", testutil.Level2Input())

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"detect from stdin", testutil.Level1Input(), []string{"detect", "-"}, testutil.Level1Output},
		{"cluster from file", "", []string{"cluster", level2}, testutil.Level2Output},
		{"periodic from stdin", testutil.Level3Input(), []string{"periodic", "-"}, testutil.Level3Output},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPeriodic_JSON(t *testing.T) {
	got, err := execute(t, testutil.Level3Input(), "periodic", "--json", "--check-rotations", "-")
	require.NoError(t, err)

	var rep pipeline.Report
	require.NoError(t, json.Unmarshal([]byte(got), &rep))
	assert.Equal(t, "periodic", rep.Level)
	require.Len(t, rep.Runs, 2)
	assert.Equal(t, []int64{1, 7, 13, 19}, rep.Runs[0].Timestamps)
	require.NotNil(t, rep.Intervals)
	assert.InDelta(t, 5.0, rep.Intervals.Mean, 1e-9)
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "analysis.json", `{"value_mapper": "identity"}`)

	got, err := execute(t, testutil.Level2Input(), "--config", cfg, "cluster", "-")
	require.NoError(t, err)
	assert.Equal(t, "4260 4260 1\n6547 6547 1\n7263 7263 1\n", got)

	bad := writeFile(t, t.TempDir(), "bad.json", `{"min_occurrences": 0}`)
	_, err = execute(t, testutil.Level3Input(), "-c", bad, "periodic", "-")
	assert.ErrorContains(t, err, "min_occurrences")
}

func TestLevelCommands_Errors(t *testing.T) {
	_, err := execute(t, "", "detect")
	assert.Error(t, err, "input argument is required")

	_, err = execute(t, "", "detect", filepath.Join(t.TempDir(), "missing.inp"))
	assert.ErrorContains(t, err, "failed to open input")

	_, err = execute(t, "1 2", "detect", "-")
	assert.ErrorContains(t, err, "failed to parse recording")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "level-1/lvl1-0.inp", testutil.Level1Input())
	writeFile(t, dir, "level-1/lvl1-1.inp", testutil.Level1Input())

	got, err := execute(t, "", "batch", "--dir", dir, "--level", "detect")
	require.NoError(t, err)
	assert.Equal(t, "wrote 2 files\n", got)

	data, err := os.ReadFile(filepath.Join(dir, "level-1", "lev1-1.out"))
	require.NoError(t, err)
	assert.Equal(t, testutil.Level1Output, string(data))

	_, err = execute(t, "", "batch", "--dir", dir, "--level", "7")
	assert.ErrorContains(t, err, "unknown level")

	_, err = execute(t, "", "batch", "--dir", dir)
	assert.Error(t, err, "--level is required")
}

func TestDebugFlag(t *testing.T) {
	_, err := execute(t, testutil.Level1Input(), "--debug", "detect", "-")
	require.NoError(t, err)
	assert.True(t, monitoring.DebugEnabled())
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "asteroid "), got)
}
