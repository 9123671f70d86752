package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/jpfluger/schedprim/ajson"
	"github.com/jpfluger/schedprim/alog"
	"github.com/spf13/cobra"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Run the JSON fixture portability suite",
}

var fixtureRunCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Load every fixture in dir and report pass/fail counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFixtureDir(args[0])
	},
}

var fixtureWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-run the fixture suite in dir whenever a file changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchFixtureDir(args[0])
	},
}

func init() {
	fixtureCmd.AddCommand(fixtureRunCmd)
	fixtureCmd.AddCommand(fixtureWatchCmd)
	rootCmd.AddCommand(fixtureCmd)
}

func runFixtureDir(dir string) error {
	files, err := ajson.FindFixtureFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("no fixture files found in %s\n", dir)
		return nil
	}

	var anyFailed bool
	for _, file := range files {
		doc, err := ajson.LoadFixtureDocument(file)
		if err != nil {
			fmt.Printf("%s: failed to load: %v\n", file, err)
			anyFailed = true
			continue
		}
		result, err := doc.Run()
		if err != nil {
			fmt.Printf("%s: failed to run: %v\n", file, err)
			anyFailed = true
			continue
		}
		status := "PASS"
		if !result.Passed() {
			status = "FAIL"
			anyFailed = true
		}
		fmt.Printf("%s: %s (%s of %s expectations passed)\n", file, status,
			humanize.Comma(int64(result.TotalCount()-result.FailedCount())),
			humanize.Comma(int64(result.TotalCount())))
		for _, f := range result.Failures {
			fmt.Printf("  - %s\n", f)
		}
	}
	if anyFailed {
		return fmt.Errorf("one or more fixtures failed")
	}
	return nil
}

func watchFixtureDir(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start fixture watcher: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %v", dir, err)
	}

	logger := alog.LOGGER(alog.LOGGER_APP)
	fmt.Printf("watching %s for fixture changes (ctrl-c to stop)\n", dir)
	if err := runFixtureDir(dir); err != nil {
		fmt.Println(err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().Str("file", event.Name).Msg("fixture dir changed, re-running suite")
			if err := runFixtureDir(dir); err != nil {
				fmt.Println(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("fixture watcher error")
		}
	}
}
