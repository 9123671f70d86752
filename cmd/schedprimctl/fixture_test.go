package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingFixtureJSON = `{
  "schema_version": "1.0.0",
  "epoch": "2026-08-03T00:00:00Z",
  "rules": [
    {"pattern_id": "scenario", "day_of_week": 1, "start_time": "08:00", "end_time": "17:00"}
  ],
  "exceptions": [],
  "expected": [
    {"op": "add_units", "pattern_id": "scenario", "start": "2026-08-03T09:00:00Z", "units": 60, "expect_result": "2026-08-03T10:00:00Z"}
  ]
}`

const failingFixtureJSON = `{
  "schema_version": "1.0.0",
  "epoch": "2026-08-03T00:00:00Z",
  "rules": [
    {"pattern_id": "scenario", "day_of_week": 1, "start_time": "08:00", "end_time": "17:00"}
  ],
  "exceptions": [],
  "expected": [
    {"op": "add_units", "pattern_id": "scenario", "start": "2026-08-03T09:00:00Z", "units": 60, "expect_result": "2026-08-03T11:00:00Z"}
  ]
}`

func TestRunFixtureDir_PassesOnGoodFixture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.json"), []byte(passingFixtureJSON), 0o644))

	assert.NoError(t, runFixtureDir(dir))
}

func TestRunFixtureDir_FailsOnMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.json"), []byte(failingFixtureJSON), 0o644))

	assert.Error(t, runFixtureDir(dir))
}

func TestRunFixtureDir_EmptyDirIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, runFixtureDir(dir))
}

func TestFixtureRunCmd_Execute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.json"), []byte(passingFixtureJSON), 0o644))

	rootCmd.SetArgs([]string{"fixture", "run", dir})
	assert.NoError(t, rootCmd.Execute())
}
