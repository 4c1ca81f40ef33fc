package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"drivebook/internal/infra/repository"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresUoW runs write operations in a single database transaction.
// Optimistic version conflicts on the course document rerun the whole
// function, so a retry re-reads current state instead of replaying stale
// intent; after the bounded retries the last error surfaces.
type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) commands.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			waitTime := time.Duration(attempt) * 50 * time.Millisecond
			slog.Warn("retrying transaction due to retryable error",
				"attempt", attempt+1,
				"wait_time", waitTime,
				"error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitTime):
			}
		}

		lastErr = u.runInTx(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryableError(lastErr) {
			return lastErr
		}
	}
	return errs.Mark(lastErr, errMaxRetriesExceeded)
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(ctx, newTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	if errors.Is(err, errs.ErrVersionConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type txImpl struct {
	courses  *repository.CourseRepository
	bookings *repository.BookingRepository
}

func newTx(tx pgx.Tx) commands.Tx {
	return &txImpl{
		courses:  repository.NewCourseRepository(tx),
		bookings: repository.NewBookingRepository(tx),
	}
}

func (t *txImpl) Courses() commands.CourseTxRepository {
	return t.courses
}

func (t *txImpl) Bookings() commands.BookingTxRepository {
	return t.bookings
}
