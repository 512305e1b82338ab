package handbook

import "context"

// Navigator reveals a content block after the reader selects it, either
// from search results or from the table of contents.
type Navigator interface {
	// Navigate reveals the block with the given ID.
	// Returns ENOTFOUND if the page has no such block.
	Navigate(ctx context.Context, id string) error
}
