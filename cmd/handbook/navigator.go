package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/handbook"
)

var _ handbook.Navigator = (*BlockNavigator)(nil)

// BlockNavigator reveals a block by printing it as Markdown, then records
// it in the reading progress.
type BlockNavigator struct {
	Page        *Page
	State       *handbook.State
	Preferences handbook.PreferenceService
	Converter   handbook.Converter
	Stdout      io.Writer
}

// Navigate prints the block with the given ID and marks it read.
func (n *BlockNavigator) Navigate(ctx context.Context, id string) error {
	block, ok := n.Page.Blocks[id]
	if !ok {
		return handbook.Errorf(handbook.ENOTFOUND, "block %q not found", id)
	}

	text := block.Body
	if block.HTML != "" {
		md, err := n.Converter.Convert(block.HTML)
		if err != nil {
			return err
		}
		text = md
	}
	fmt.Fprintln(n.Stdout, text)

	if n.State.Visit(id) {
		return handbook.SaveProgress(ctx, n.Preferences, n.State.Progress)
	}
	return nil
}
