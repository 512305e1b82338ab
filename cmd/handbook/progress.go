package main

import (
	"fmt"

	"github.com/fwojciec/handbook"
)

// Run executes the progress command.
func (c *ProgressCmd) Run(deps *Dependencies) error {
	if c.Reset {
		deps.State.Progress = &handbook.Progress{}
		if err := deps.Preferences.DeletePreference(deps.Ctx, handbook.ProgressKey); err != nil && handbook.ErrorCode(err) != handbook.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Reading progress cleared")
		return nil
	}

	page, err := LoadPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	read, total := deps.State.Progress.Completion(page.Index)
	percent := 0
	if total > 0 {
		percent = read * 100 / total
	}
	fmt.Fprintf(deps.Stdout, "Read %d of %d blocks (%d%%):\n\n", read, total, percent)

	for _, r := range page.Index.Records() {
		mark := " "
		if deps.State.Progress.Contains(r.ID) {
			mark = "x"
		}
		fmt.Fprintf(deps.Stdout, "  [%s] %s (#%s)\n", mark, r.Title, r.ID)
	}

	return nil
}
