package mock

import "github.com/fwojciec/handbook"

var _ handbook.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of handbook.Renderer.
type Renderer struct {
	RenderFn func(source string) (string, error)
}

func (r *Renderer) Render(source string) (string, error) {
	return r.RenderFn(source)
}
