package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/jpfluger/schedprim/aapp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print schedprimctl's build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		av := &aapp.AppVersion{
			Name:      "schedprimctl",
			Owner:     "schedprim",
			About:     "working calendar and capacity engine fixture runner",
			LegalMark: "schedprim contributors",
			Version:   semver.MustParse("0.1.0"),
		}
		if err := av.Validate(); err != nil {
			return err
		}
		v, err := av.Format(aapp.APPVERSION_FORMAT_BUILD)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
