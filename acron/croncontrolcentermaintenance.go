package acron

import (
	"strings"
	"sync"
)

// ICronControlCenterMaintenance is the app-level control center that
// maintenance tasks run against: an EngineRegistry of live capacity engines
// plus the directory of JSON fixtures they re-validate against.
type ICronControlCenterMaintenance interface {
	ICronControlCenter
	GetEngineRegistry() *EngineRegistry
	GetFixtureDir() string
}

// CronControlCenterMaintenance is the maintenance counterpart to the
// teacher's CronControlCenterShell: instead of a working directory and
// stdout/stderr captures for shell commands, it carries the registry of
// acapacity.Engine instances and the fixture directory maintenance tasks
// operate against.
type CronControlCenterMaintenance struct {
	CronControlCenter

	FixtureDir string `json:"fixtureDir,omitempty"`

	registry *EngineRegistry
	mu       sync.RWMutex
}

// NewCronControlCenterMaintenance returns a CronControlCenterMaintenance with
// an initialized, empty EngineRegistry.
func NewCronControlCenterMaintenance(fixtureDir string) *CronControlCenterMaintenance {
	return &CronControlCenterMaintenance{
		FixtureDir: strings.TrimSpace(fixtureDir),
		registry:   NewEngineRegistry(),
	}
}

// GetEngineRegistry returns the registry of live engines this control center exposes.
func (c *CronControlCenterMaintenance) GetEngineRegistry() *EngineRegistry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.registry == nil {
		c.registry = NewEngineRegistry()
	}
	return c.registry
}

// GetFixtureDir returns the directory maintenance tasks load fixtures from.
func (c *CronControlCenterMaintenance) GetFixtureDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FixtureDir
}

var (
	defaultMaintenanceCCC *CronControlCenterMaintenance
	onceMaintenanceCCC    sync.Once
	muMaintenanceCCC      sync.Mutex
)

// DefaultMaintenanceControlCenter returns the process-wide control center
// used by MaintenancePlan's default run function. Register engines against
// it (DefaultMaintenanceControlCenter().GetEngineRegistry().Register(...))
// before scheduling any MaintenancePlan that needs them.
func DefaultMaintenanceControlCenter() *CronControlCenterMaintenance {
	onceMaintenanceCCC.Do(func() {
		defaultMaintenanceCCC = NewCronControlCenterMaintenance("")
	})
	return defaultMaintenanceCCC
}

// SetDefaultMaintenanceControlCenter replaces the process-wide control
// center, e.g. to point maintenance tasks at a specific fixture directory.
func SetDefaultMaintenanceControlCenter(ccc *CronControlCenterMaintenance) {
	muMaintenanceCCC.Lock()
	defer muMaintenanceCCC.Unlock()
	defaultMaintenanceCCC = ccc
}
