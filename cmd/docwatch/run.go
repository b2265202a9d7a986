package main

import (
	"fmt"

	"github.com/fwojciec/docwatch"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	result, err := deps.Monitor.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, docwatch.FormatChangeSet(result.Changes))

	if result.Report != "" {
		path, err := deps.Reports.Write(result.Report, result.Snapshot.Timestamp)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error saving report: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Report saved to %s\n", path)
	}

	return nil
}
