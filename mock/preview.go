package mock

import "github.com/fwojciec/handbook"

var _ handbook.PreviewComposer = (*PreviewComposer)(nil)

// PreviewComposer is a mock implementation of handbook.PreviewComposer.
type PreviewComposer struct {
	ComposeFn func(html, css string) (string, error)
	FrameFn   func(doc string) (string, error)
}

func (c *PreviewComposer) Compose(html, css string) (string, error) {
	return c.ComposeFn(html, css)
}

func (c *PreviewComposer) Frame(doc string) (string, error) {
	return c.FrameFn(doc)
}
