//go:build unit

package queries_test

import (
	"math"
	"testing"

	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name       string
		from, size int
		limit      int32
		offset     int32
		wantErr    bool
	}{
		{name: "first page", from: 0, size: 10, limit: 10, offset: 0},
		{name: "from inside first page", from: 9, size: 10, limit: 10, offset: 0},
		{name: "from aligns down to page start", from: 25, size: 10, limit: 10, offset: 20},
		{name: "size one", from: 3, size: 1, limit: 1, offset: 3},
		{name: "huge size is clamped", from: 0, size: math.MaxInt32 + 1, limit: math.MaxInt32, offset: 0},
		{name: "negative from", from: -1, size: 10, wantErr: true},
		{name: "zero size", from: 0, size: 0, wantErr: true},
		{name: "negative size", from: 0, size: -5, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := queries.NewPage(c.from, c.size)
			if c.wantErr {
				require.ErrorIs(t, err, queries.ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.limit, p.Limit())
			assert.Equal(t, c.offset, p.Offset())
		})
	}
}
