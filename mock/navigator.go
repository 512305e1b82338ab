package mock

import (
	"context"

	"github.com/fwojciec/handbook"
)

var _ handbook.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of handbook.Navigator.
type Navigator struct {
	NavigateFn func(ctx context.Context, id string) error
}

func (n *Navigator) Navigate(ctx context.Context, id string) error {
	return n.NavigateFn(ctx, id)
}
