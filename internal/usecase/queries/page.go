package queries

import (
	"math"

	"shareit/internal/pkg/errs"
)

const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
)

var ErrInvalidPage = errs.Validation("from must be >= 0 and size must be > 0")

// Page is a from/size window. from selects the page index from/size, not a
// row offset, so callers must keep size stable while paging.
type Page struct {
	from int
	size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{from: from, size: size}, nil
}

func (p Page) Limit() int32 {
	return clampInt32(p.size)
}

func (p Page) Offset() int32 {
	return clampInt32((p.from / p.size) * p.size)
}

func clampInt32(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
