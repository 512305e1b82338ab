package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/handbook"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	page, err := LoadPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	// A blank query clears the results rather than matching everything.
	if strings.TrimSpace(c.Query) == "" {
		return nil
	}

	deps.State.OpenSearch()
	results := page.Searcher(deps).Query(c.Query)
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found")
		return nil
	}

	if c.Pick == 0 {
		fmt.Fprintln(deps.Stdout, handbook.FormatResults(results))
		return nil
	}

	if c.Pick < 0 || c.Pick > len(results) {
		fmt.Fprintf(deps.Stderr, "error: --pick must be between 1 and %d\n", len(results))
		return handbook.Errorf(handbook.EINVALID, "result %d out of range", c.Pick)
	}

	if err := page.Navigator(deps).Navigate(deps.Ctx, results[c.Pick-1].ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}
	return nil
}
