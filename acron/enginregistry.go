package acron

import (
	"fmt"
	"sync"

	"github.com/jpfluger/schedprim/acapacity"
)

// EngineRegistry tracks the live acapacity.Engine instances that maintenance
// tasks are allowed to touch, keyed by resource id. It exists so a
// MaintenanceTask never has to be handed a raw map and can be resolved
// through ICronControlCenterMaintenance the same way TaskShell resolved
// shell state through ICronControlCenterShell.
type EngineRegistry struct {
	engines map[string]*acapacity.Engine
	mu      sync.RWMutex
}

// NewEngineRegistry returns an empty, ready-to-use EngineRegistry.
func NewEngineRegistry() *EngineRegistry {
	return &EngineRegistry{engines: map[string]*acapacity.Engine{}}
}

// Register adds or replaces the engine tracked for resourceId.
func (r *EngineRegistry) Register(resourceId string, engine *acapacity.Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[resourceId] = engine
}

// Get returns the engine tracked for resourceId, or an error if none is registered.
func (r *EngineRegistry) Get(resourceId string) (*acapacity.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[resourceId]
	if !ok {
		return nil, fmt.Errorf("no engine registered for resource '%s'", resourceId)
	}
	return e, nil
}

// ResourceIds returns the resource ids currently tracked, in no particular order.
func (r *EngineRegistry) ResourceIds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	return ids
}
