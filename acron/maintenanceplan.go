package acron

import (
	"encoding/json"
	"fmt"

	"github.com/jpfluger/schedprim/auuids"
)

// MaintenancePlan is the concrete, JSON-loadable IJobPlan used by the
// maintenance scheduler. It keeps JobPlan's JSON shape (crontab,
// runImmediately, startAt, endAt, a typed task) and resolves Task through
// TYPEMANAGER_MAINTENANCETASK, the way the teacher's JobPlanShell resolved
// TYPEMANAGER_CRONTASKDATA for shell-command jobs.
type MaintenancePlan struct {
	JobPlan
}

// UnmarshalJSON is a custom unmarshaller for MaintenancePlan that resolves
// the polymorphic Task field through the maintenance task type registry.
func (j *MaintenancePlan) UnmarshalJSON(data []byte) error {
	type Alias MaintenancePlan
	aux := &struct {
		Task json.RawMessage `json:"task"`
		*Alias
	}{
		Alias: (*Alias)(j),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("failed to unmarshal MaintenancePlan: %v", err)
	}

	if len(aux.Task) == 0 {
		return nil
	}
	if err := j.UnmarshalJSONTask(aux.Task); err != nil {
		return fmt.Errorf("failed to unmarshal MaintenancePlan task: %v", err)
	}

	return nil
}

// GetRunFunction returns the gocron-compatible run function for this plan.
func (j *MaintenancePlan) GetRunFunction() (function any) {
	return runMaintenancePlan
}

// Run executes the plan's task against the process-wide maintenance control
// center, recording a JRun the way JobPlan.RunJobPlanDefault does for any
// other control center.
func (j *MaintenancePlan) Run(ccc ICronControlCenter) (IJRun, error) {
	cccM, ok := ccc.(ICronControlCenterMaintenance)
	if !ok {
		return nil, fmt.Errorf("ccc is not a ICronControlCenterMaintenance")
	}
	return j.RunJobPlanDefault(cccM)
}

// runMaintenancePlan runs the provided IJobPlan against the process-wide
// maintenance control center. Required by gocron's job-function signature.
func runMaintenancePlan(jobPlan IJobPlan) {
	ccc := DefaultMaintenanceControlCenter()
	ccc.SetJRun(NewJRunWithOptions(jobPlan.GetJobPlanId(), auuids.UUIDLabel(jobPlan.GetTitle()), jobPlan.GetTask().GetType()))
	_, _ = jobPlan.Run(ccc)
}
