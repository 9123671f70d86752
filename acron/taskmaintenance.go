package acron

import (
	"fmt"

	"github.com/jpfluger/schedprim/ajson"
)

// TASKTYPE_EXTENDHORIZON rolls one or more registered engines' materialised
// horizons forward so they always cover at least MinHorizonUnits past the
// engine's horizon begin (expressed in the engine's own integer time
// units); the current time is not consulted. It is the
// scheduled equivalent of calling Engine.EnsureHorizon by hand.
const TASKTYPE_EXTENDHORIZON TaskType = "extend_horizon"

// TaskExtendHorizon implements ITask for rolling-horizon maintenance.
type TaskExtendHorizon struct {
	Type            TaskType `json:"type"`
	ResourceIds     []string `json:"resourceIds,omitempty"`
	MinHorizonUnits int64    `json:"minHorizonUnits"`
}

// GetType returns the type of the TaskExtendHorizon.
func (te *TaskExtendHorizon) GetType() TaskType {
	return te.Type
}

// Validate ensures quality control on this struct.
func (te *TaskExtendHorizon) Validate() error {
	if te.Type.IsEmpty() {
		te.Type = TASKTYPE_EXTENDHORIZON
	}
	if len(te.ResourceIds) == 0 {
		return fmt.Errorf("resourceIds is required")
	}
	if te.MinHorizonUnits <= 0 {
		return fmt.Errorf("minHorizonUnits must be positive")
	}
	return nil
}

// Run extends the horizon of each registered engine named in ResourceIds.
func (te *TaskExtendHorizon) Run(ccc ICronControlCenter) error {
	if ccc == nil {
		return fmt.Errorf("nil cronControlCenter")
	}
	cccM, ok := ccc.(ICronControlCenterMaintenance)
	if !ok {
		return fmt.Errorf("ccc is not a ICronControlCenterMaintenance")
	}
	registry := cccM.GetEngineRegistry()
	for _, resourceId := range te.ResourceIds {
		engine, err := registry.Get(resourceId)
		if err != nil {
			cccM.GetJRun().Logger().Info().Msgf("extend horizon: %v", err)
			return err
		}
		target := engine.HorizonBegin() + te.MinHorizonUnits
		if err := engine.EnsureHorizon(target); err != nil {
			cccM.GetJRun().Logger().Info().Msgf("extend horizon for '%s': %v", resourceId, err)
			return fmt.Errorf("failed to extend horizon for '%s': %v", resourceId, err)
		}
		cccM.GetJRun().Logger().Info().Msgf("extend horizon for '%s': now ends at %d", resourceId, engine.HorizonEnd())
	}
	return nil
}

// TASKTYPE_REVALIDATEFIXTURES re-runs the JSON fixture portability suite
// (spec schema, §6) against freshly materialised engines and fails the job
// if any expected row no longer matches.
const TASKTYPE_REVALIDATEFIXTURES TaskType = "revalidate_fixtures"

// TaskRevalidateFixtures implements ITask for fixture-directory re-validation.
type TaskRevalidateFixtures struct {
	Type TaskType `json:"type"`
}

// GetType returns the type of the TaskRevalidateFixtures.
func (tr *TaskRevalidateFixtures) GetType() TaskType {
	return tr.Type
}

// Validate ensures quality control on this struct.
func (tr *TaskRevalidateFixtures) Validate() error {
	if tr.Type.IsEmpty() {
		tr.Type = TASKTYPE_REVALIDATEFIXTURES
	}
	return nil
}

// Run loads every fixture document in the control center's fixture
// directory and re-checks its expected rows.
func (tr *TaskRevalidateFixtures) Run(ccc ICronControlCenter) error {
	if ccc == nil {
		return fmt.Errorf("nil cronControlCenter")
	}
	cccM, ok := ccc.(ICronControlCenterMaintenance)
	if !ok {
		return fmt.Errorf("ccc is not a ICronControlCenterMaintenance")
	}
	dir := cccM.GetFixtureDir()
	if dir == "" {
		return fmt.Errorf("fixture dir is empty")
	}

	files, err := ajson.FindFixtureFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to find fixture files: %v", err)
	}

	for _, file := range files {
		doc, err := ajson.LoadFixtureDocument(file)
		if err != nil {
			cccM.GetJRun().Logger().Info().Msgf("fixture '%s': load failed: %v", file, err)
			return fmt.Errorf("failed to load fixture '%s': %v", file, err)
		}
		result, err := doc.Run()
		if err != nil {
			cccM.GetJRun().Logger().Info().Msgf("fixture '%s': run failed: %v", file, err)
			return fmt.Errorf("failed to run fixture '%s': %v", file, err)
		}
		if !result.Passed() {
			cccM.GetJRun().Logger().Info().Msgf("fixture '%s': %d/%d expectations failed", file, result.FailedCount(), result.TotalCount())
			return fmt.Errorf("fixture '%s' failed %d of %d expectations", file, result.FailedCount(), result.TotalCount())
		}
		cccM.GetJRun().Logger().Info().Msgf("fixture '%s': %d expectations passed", file, result.TotalCount())
	}
	return nil
}
