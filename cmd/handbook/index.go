package main

import (
	"fmt"

	"github.com/fwojciec/handbook"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	page, err := LoadPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	records := page.Index.Records()
	if len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s has no searchable blocks\n", c.Page)
		return handbook.Errorf(handbook.ENOTFOUND, "%s has no searchable blocks", c.Page)
	}

	fmt.Fprintf(deps.Stdout, "Blocks in %s (%d total):\n\n", c.Page, len(records))
	for i, r := range records {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     #%s\n", i+1, r.Title, r.ID)
	}

	return nil
}
