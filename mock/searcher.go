package mock

import "github.com/fwojciec/handbook"

var _ handbook.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of handbook.Searcher.
type Searcher struct {
	QueryFn func(q string) []handbook.Result
}

func (s *Searcher) Query(q string) []handbook.Result {
	return s.QueryFn(q)
}
