package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/jpfluger/schedprim/ajson"
	"github.com/jpfluger/schedprim/autils"
	"github.com/spf13/cobra"
)

// ServerConfig is schedprimctl's own settings shape, layered from one or
// more Hjson/JSON files via ajson's mergo-backed merge helpers.
type ServerConfig struct {
	ConfigVersion   string `json:"configVersion"`
	FixtureDir      string `json:"fixtureDir"`
	MaintenanceDir  string `json:"maintenanceDir"`
	MinHorizonUnits int64  `json:"minHorizonUnits"`
	LogLevel        string `json:"logLevel"`

	version *semver.Version
}

var configSupported = autils.MustNewVersionPtr("1.0.0")

// Directory keys schedprimctl registers in autils' process-wide AppPathMap
// once a config has been merged, so other commands (fixture run/watch,
// serve) can resolve them without re-reading a config file.
const (
	dirFixtures    autils.AppPathKey = "DIR_FIXTURES"
	dirMaintenance autils.AppPathKey = "DIR_MAINTENANCE"
)

func (c *ServerConfig) resolveVersion() error {
	v := autils.NewVersionFromString(c.ConfigVersion, false)
	if err := autils.IsSemverVersionInvalid(v); err != nil {
		return fmt.Errorf("invalid configVersion %q: %v", c.ConfigVersion, err)
	}
	c.version = v
	if v.Major() != configSupported.Major() {
		return fmt.Errorf("configVersion %s is incompatible with supported major version %d", v.String(), configSupported.Major())
	}
	return nil
}

// ResolveAppPaths validates (creating if missing) the directories named by
// this config, rewrites the config's fields to their resolved absolute
// paths, and registers them in autils' global AppPathMap under dirFixtures
// and dirMaintenance so commands that don't load a config directly (e.g.
// serve's --fixture-dir fallback) can still find them.
func (c *ServerConfig) ResolveAppPaths() (autils.AppPathMap, error) {
	apm := autils.NewAppPathMap()
	if c.FixtureDir != "" {
		apm.SetPath(dirFixtures, c.FixtureDir)
	}
	if c.MaintenanceDir != "" {
		apm.SetPath(dirMaintenance, c.MaintenanceDir)
	}
	if len(apm) == 0 {
		return apm, nil
	}

	if err := apm.EnsureDirs(""); err != nil {
		return nil, fmt.Errorf("failed to ensure config directories exist: %v", err)
	}
	if err := apm.ValidateWithOption(""); err != nil {
		return nil, fmt.Errorf("failed to validate config directories: %v", err)
	}

	for key, val := range apm {
		autils.SetAppPath(key, val)
	}
	if v := apm.GetPath(dirFixtures); v != "" {
		c.FixtureDir = v
	}
	if v := apm.GetPath(dirMaintenance); v != "" {
		c.MaintenanceDir = v
	}
	return apm, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Load and print schedprimctl's merged settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show [files...]",
	Short: "Merge the given Hjson/JSON settings files (later files override earlier ones) and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg ServerConfig
		err := ajson.MergeConfigsInto(&cfg, ajson.MergeOptions{
			Files:         args,
			UseHJSON:      true,
			StripComments: true,
		})
		if err != nil {
			return fmt.Errorf("failed to merge settings: %v", err)
		}
		if cfg.ConfigVersion == "" {
			cfg.ConfigVersion = configSupported.String()
		}
		if err := cfg.resolveVersion(); err != nil {
			return err
		}
		if _, err := cfg.ResolveAppPaths(); err != nil {
			return err
		}

		out, err := ajson.MarshalIndentToString(&cfg)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
