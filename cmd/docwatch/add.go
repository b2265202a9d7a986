package main

import (
	"fmt"

	"github.com/fwojciec/docwatch"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	src := &docwatch.Source{
		ID:   c.ID,
		Kind: docwatch.Kind(c.Kind),
		URL:  c.URL,
	}

	if err := deps.Sources.CreateSource(deps.Ctx, src); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s source %q (%s)\n", src.Kind, src.ID, src.URL)
	return nil
}
