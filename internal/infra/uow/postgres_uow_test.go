//go:build unit

package uow

import (
	"testing"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}, "insert booking"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicy_Allows(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: time.Millisecond}
	retryable := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	assert.True(t, p.allows(retryable, 0))
	assert.True(t, p.allows(retryable, 2))
	assert.False(t, p.allows(retryable, 3))
	assert.False(t, p.allows(errs.New("boom"), 0))
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt := range 3 {
		got := p.backoff(attempt)
		floor := time.Duration(1<<attempt) * p.base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5)
	}
}
