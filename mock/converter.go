package mock

import "github.com/fwojciec/handbook"

var _ handbook.Converter = (*Converter)(nil)

// Converter is a mock implementation of handbook.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
