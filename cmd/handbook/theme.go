package main

import (
	"fmt"

	"github.com/fwojciec/handbook"
)

// Run executes the theme command.
func (c *ThemeCmd) Run(deps *Dependencies) error {
	switch c.Action {
	case "":
		fmt.Fprintf(deps.Stdout, "Theme: %s\n", deps.State.Theme)
		return nil
	case "toggle":
		deps.State.Theme = deps.State.Theme.Toggle()
	default:
		theme := handbook.Theme(c.Action)
		if err := theme.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use toggle, light or dark.\n", handbook.ErrorMessage(err))
			return err
		}
		deps.State.Theme = theme
	}

	if err := handbook.SaveTheme(deps.Ctx, deps.Preferences, deps.State.Theme); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Theme: %s\n", deps.State.Theme)
	return nil
}
