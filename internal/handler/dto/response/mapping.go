package response

import (
	"shareit/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyView fills a new T from a flat view. copier only fails on mismatched
// shapes, so an error here is a programming error surfaced as a 500.
func copyView[T any](src any) (*T, error) {
	var res T
	if err := copier.Copy(&res, src); err != nil {
		return nil, errs.Wrap(err, "failed to map response")
	}
	return &res, nil
}

func mapAll[V, R any](vs []V, fn func(V) (R, error)) ([]R, error) {
	res := make([]R, len(vs))
	for i, v := range vs {
		r, err := fn(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
