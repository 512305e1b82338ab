package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/handbook"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	if c.HTML == "" && c.CSS == "" {
		fmt.Fprintln(deps.Stderr, "error: at least one of --html or --css is required")
		return handbook.Errorf(handbook.EINVALID, "nothing to preview")
	}

	fragment, err := readOptional(c.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	css, err := readOptional(c.CSS)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	doc, err := deps.Composer.Compose(fragment, css)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	if c.Frame {
		if doc, err = deps.Composer.Frame(doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, doc)
	return nil
}

// readOptional returns the contents of path, or "" when path is empty.
func readOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}
