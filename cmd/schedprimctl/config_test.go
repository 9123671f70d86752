package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpfluger/schedprim/autils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveVersion_AcceptsCompatibleMinor(t *testing.T) {
	cfg := &ServerConfig{ConfigVersion: "1.2.0"}
	assert.NoError(t, cfg.resolveVersion())
}

func TestResolveVersion_RejectsInvalidSemver(t *testing.T) {
	cfg := &ServerConfig{ConfigVersion: "not-a-version"}
	err := cfg.resolveVersion()
	assert.Error(t, err)
}

func TestResolveVersion_RejectsIncompatibleMajor(t *testing.T) {
	cfg := &ServerConfig{ConfigVersion: "2.0.0"}
	err := cfg.resolveVersion()
	assert.Error(t, err)
}

func TestConfigShowCmd_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	fixtureDir := filepath.Join(dir, "fixtures")
	base := writeConfigFile(t, dir, "base.hjson", fmt.Sprintf(`{
		configVersion: "1.0.0"
		fixtureDir: %s
		minHorizonUnits: 10000
	}`, fixtureDir))
	override := writeConfigFile(t, dir, "override.hjson", `{
		minHorizonUnits: 20000
		logLevel: debug
	}`)

	rootCmd.SetArgs([]string{"config", "show", base, override})
	err := rootCmd.Execute()
	assert.NoError(t, err)

	// config show registers directories it names in the global AppPathMap,
	// creating them if missing, so other commands can resolve them later.
	_, err = os.Stat(fixtureDir)
	assert.NoError(t, err)
	got, ok := autils.GetAppPath(dirFixtures)
	assert.True(t, ok)
	assert.Equal(t, fixtureDir, got)
}

func TestServerConfig_ResolveAppPaths_SkipsWhenEmpty(t *testing.T) {
	cfg := &ServerConfig{}
	apm, err := cfg.ResolveAppPaths()
	assert.NoError(t, err)
	assert.Empty(t, apm)
}

func TestServerConfig_ResolveAppPaths_CreatesAndValidatesDirs(t *testing.T) {
	dir := t.TempDir()
	cfg := &ServerConfig{
		FixtureDir:     filepath.Join(dir, "fixtures"),
		MaintenanceDir: filepath.Join(dir, "maintenance"),
	}
	apm, err := cfg.ResolveAppPaths()
	require.NoError(t, err)
	assert.Equal(t, cfg.FixtureDir, apm.GetPath(dirFixtures))
	assert.Equal(t, cfg.MaintenanceDir, apm.GetPath(dirMaintenance))

	_, err = os.Stat(cfg.FixtureDir)
	assert.NoError(t, err)
	_, err = os.Stat(cfg.MaintenanceDir)
	assert.NoError(t, err)
}
