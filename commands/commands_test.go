package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-roadmap/models/career"
	"career-roadmap/services"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ROADMAP_LOGGING_LEVEL", "error")
	t.Setenv("PORT", "")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := run(t, "plan", "data_scientist", "14")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Data Scientist: 14 months", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, []string{"#", "PHASE", "MONTHS", "DURATION"}, strings.Fields(lines[2]))
	assert.Contains(t, lines[3], "Foundation")
	assert.Contains(t, lines[3], "Months 1-3")
	assert.Contains(t, lines[8], "Projects & Portfolio")
	assert.Contains(t, lines[8], "Months 13-14")
}

func TestPlanCommandJSON(t *testing.T) {
	out, err := run(t, "plan", "--json", "ml_engineer", "12")
	require.NoError(t, err)

	var rm career.Roadmap
	require.NoError(t, json.Unmarshal([]byte(out), &rm))
	assert.Equal(t, "Machine Learning Engineer", rm.Title)
	require.Len(t, rm.Phases, 6)
	assert.Equal(t, 11, rm.Phases[5].StartMonth)
	assert.Equal(t, 12, rm.Phases[5].EndMonth)
}

func TestPlanCommandErrors(t *testing.T) {
	_, err := run(t, "plan", "astronaut", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown career path")

	_, err = run(t, "plan", "data_scientist", "a year")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whole number")

	_, err = run(t, "plan", "data_scientist", "4")
	require.ErrorIs(t, err, services.ErrInvalidDuration)

	_, err = run(t, "plan", "data_scientist", "1000")
	require.ErrorIs(t, err, services.ErrInvalidDuration)

	_, err = run(t, "plan", "data_scientist")
	require.Error(t, err)
}

func TestPathsCommand(t *testing.T) {
	out, err := run(t, "paths")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"KEY", "TITLE", "PHASES"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "data_scientist"))
	assert.True(t, strings.HasSuffix(lines[5], "6"))
}

func TestPathsCommandWithCatalogFile(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "paths.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`paths:
  - key: tech_writer
    title: Technical Writer
    phases:
      - name: Style
        description: Writing guides
      - name: Tooling
        description: Docs as code
`), 0o644))
	cfgPath := filepath.Join(dir, "roadmap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog:\n  source: file\n  path: "+catalogPath+"\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "paths")
	require.NoError(t, err)
	assert.Contains(t, out, "tech_writer")
	assert.Contains(t, out, "Technical Writer")
	assert.NotContains(t, out, "data_scientist")

	out, err = run(t, "-c", cfgPath, "plan", "tech_writer", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Months 1-2")
	assert.Contains(t, out, "Month 3")
}

func TestCatalogSeedNeedsDSN(t *testing.T) {
	t.Setenv("ROADMAP_CATALOG_DSN", "")
	_, err := run(t, "catalog", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}
