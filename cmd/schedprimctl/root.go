package main

import (
	"github.com/jpfluger/schedprim/alog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "schedprimctl",
	Short: "schedprimctl drives the working-calendar and capacity-engine fixture suite",
	Long: `schedprimctl is the operator surface for the scheduling primitives library:
it runs the JSON fixture portability suite, prints merged settings, and can
drive the maintenance scheduler that keeps a resource's horizon rolling
forward.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			alog.LOGGER(alog.LOGGER_APP).Debug().Msg("verbose logging enabled")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log a debug-level notice that verbose mode is on (the log level is not changed)")
}
