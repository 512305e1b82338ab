package mock

import "github.com/fwojciec/handbook"

var _ handbook.BlockExtractor = (*BlockExtractor)(nil)

// BlockExtractor is a mock implementation of handbook.BlockExtractor.
type BlockExtractor struct {
	ExtractBlocksFn func(html string) ([]handbook.Block, error)
}

func (e *BlockExtractor) ExtractBlocks(html string) ([]handbook.Block, error) {
	return e.ExtractBlocksFn(html)
}
