package main

import (
	"fmt"

	"github.com/fwojciec/docwatch"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal\n")
		return docwatch.Errorf(docwatch.EINVALID, "use --force to confirm removal")
	}

	if err := deps.Sources.DeleteSource(deps.Ctx, c.ID); err != nil {
		if docwatch.ErrorCode(err) == docwatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'docwatch list' to see registered sources.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docwatch.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed source %q\n", c.ID)
	return nil
}
