package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"shareit/internal/infra/query"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/commands"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errRetriesExhausted = errs.New("transaction retries exhausted")

// retryPolicy backs off exponentially with up to 20% jitter.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) allows(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	d := time.Duration(1<<attempt) * p.base
	if jitter := int64(d / 5); jitter > 0 {
		d += time.Duration(rand.Int64N(jitter))
	}
	return d
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *query.Queries
	logger *slog.Logger
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
		policy: defaultRetryPolicy,
	}
}

// Within runs fn at READ COMMITTED. Concurrent bookings of one item are
// serialized by the share lock FindByIDForShare takes, not by isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := pgx.BeginTxFunc(ctx, u.pool, opts, func(pgxTx pgx.Tx) error {
			return fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
		})
		if err == nil {
			return nil
		}
		if !u.policy.allows(err, attempt) {
			if isRetryableError(err) {
				u.logger.ErrorContext(ctx, "transaction gave up", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errRetriesExhausted)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		u.logger.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func isRetryableError(err error) bool {
	return pgconv.HasCode(err, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected)
}

// pgTx hands out repositories bound to one transaction.
type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	items    commands.ItemRepository
	bookings commands.BookingRepository
}

func (t *pgTx) Items() commands.ItemRepository {
	if t.items == nil {
		t.items = repository.NewItemRepository(t.q, t.dbtx)
	}
	return t.items
}

func (t *pgTx) Bookings() commands.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookings
}
