package main

import (
	"fmt"

	"github.com/fwojciec/handbook"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := LoadPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	if err := page.Navigator(deps).Navigate(deps.Ctx, c.ID); err != nil {
		if handbook.ErrorCode(err) == handbook.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: block %q not found. Use 'handbook index %s' to see available blocks.\n", c.ID, c.Page)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}
	return nil
}
