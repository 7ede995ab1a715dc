package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository works the same inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a Querier that can open transactions, normally the pool.
type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewRepositories binds every repository to db.
func NewRepositories(db Querier) domain.Repositories {
	return domain.Repositories{
		Users:        NewUserRepository(db),
		Sessions:     NewSessionRepository(db),
		Competences:  NewCompetenceRepository(db),
		Availability: NewAvailabilityRepository(db),
		Applications: NewApplicationRepository(db),
		Activity:     NewActivityRepository(db),
		ResetTokens:  NewResetTokenRepository(db),
	}
}

type transactor struct {
	db TxBeginner
}

func NewTransactor(db TxBeginner) domain.Transactor {
	return &transactor{db: db}
}

// WithinTx begins a transaction, hands fn repositories bound to it and
// commits when fn succeeds. Any error from fn is returned unchanged after
// the deferred rollback, which also releases the connection.
func (t *transactor) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(fmt.Errorf("begin transaction: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateConstraint maps CHECK and foreign key violations to invalid form
// data. Anything else becomes an internal error carrying op as context.
func translateConstraint(err error, op string) error {
	switch pgErrorCode(err) {
	case pgCheckViolation, pgForeignKeyViolation:
		return apperror.InvalidFormData("")
	}
	return apperror.Internal(fmt.Errorf("%s: %w", op, err))
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
