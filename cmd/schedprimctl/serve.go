package main

import (
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"syscall"

	"github.com/jpfluger/schedprim/acron"
	"github.com/jpfluger/schedprim/alog"
	"github.com/jpfluger/schedprim/autils"
	"github.com/spf13/cobra"
)

var (
	serveJobsDir    string
	serveFixtureDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Schedule maintenance plans (horizon rollover, fixture re-validation) and block",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMaintenanceServer(serveJobsDir, serveFixtureDir)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveJobsDir, "jobs-dir", "", "directory of maintenancePlan.json subdirectories to schedule")
	serveCmd.Flags().StringVar(&serveFixtureDir, "fixture-dir", "", "directory of fixtures TaskRevalidateFixtures should re-check")
	_ = serveCmd.MarkFlagRequired("jobs-dir")
	rootCmd.AddCommand(serveCmd)
}

func runMaintenanceServer(jobsDir, fixtureDir string) error {
	logger := alog.LOGGER(alog.LOGGER_APP)

	if fixtureDir == "" {
		if v, ok := autils.GetAppPath(dirFixtures); ok {
			fixtureDir = v
		}
	}

	ccc := acron.NewCronControlCenterMaintenance(fixtureDir)
	acron.SetDefaultMaintenanceControlCenter(ccc)

	jobs, err := acron.LoadJobJSONFiles(jobsDir, reflect.TypeOf(acron.MaintenancePlan{}))
	if err != nil {
		return fmt.Errorf("failed to load maintenance plans from %s: %v", jobsDir, err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no maintenance plans found under %s", jobsDir)
	}

	if err := acron.ScheduleJobPlans(jobs); err != nil {
		return fmt.Errorf("failed to schedule maintenance plans: %v", err)
	}

	acron.SCHEDULER().Start()
	logger.Info().Int("planCount", len(jobs)).Msg("maintenance scheduler started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info().Msg("maintenance scheduler shutting down")
	return acron.SCHEDULER().Shutdown()
}
