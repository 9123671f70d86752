package acron

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/jpfluger/schedprim/auuids"
)

type IJobPlanWrapper interface {
}

// use cases for this
// * do we need to know if the job ran succesfully? errored? YES
// * log that at a app level? YES
// * do we need the ability at the app level to associate the CronJob with an app JobDefinition? YES (use GetCronJobId and GetJobDefinitionId)
// * do we need to get the last saved "state" of data? YES

type IJobPlan interface {
	GetJobPlanId() auuids.UUID
	GetTitle() string
	Validate() error
	SetupGoCronJob() (gocron.JobDefinition, []gocron.JobOption, error)

	GetRunFunction() (function any)
	Run(ccc ICronControlCenter) (IJRun, error)

	GetCronJobId() uuid.UUID
	SetCronJobId(uuid uuid.UUID)

	GetLastJRun() IJRun
	SetLastJRun(jRun IJRun)

	GetTask() ITask

	// Optional
	GetFilePath() string
	SetFilePath(filePath string)

	// These are not required here.
	//GetStashedData(key string) (interface{}, error)
	//SetStashedData(key string, data interface{}) error
}

type IJobPlans []IJobPlan

type IJobCCC interface {
	GetCCC() ICronControlCenter
}
