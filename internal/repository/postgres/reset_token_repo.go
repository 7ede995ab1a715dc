package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type resetTokenRepo struct {
	db Querier
}

func NewResetTokenRepository(db Querier) domain.ResetTokenRepository {
	return &resetTokenRepo{db: db}
}

// Replace issues two statements and is meant to run inside WithinTx.
func (r *resetTokenRepo) Replace(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) error {
	if err := r.DeleteByPerson(ctx, personID); err != nil {
		return err
	}

	query := `INSERT INTO password_reset_token (person_id, token_hash, expires_at)
              VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, personID, tokenHash, expiresAt); err != nil {
		return apperror.Internal(fmt.Errorf("store reset token: %w", err))
	}
	return nil
}

func (r *resetTokenRepo) GetPersonID(ctx context.Context, tokenHash string) (int64, error) {
	query := `SELECT person_id FROM password_reset_token
              WHERE token_hash = $1 AND expires_at > now()`

	var personID int64
	if err := r.db.QueryRow(ctx, query, tokenHash).Scan(&personID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.InvalidSession()
		}
		return 0, apperror.Internal(fmt.Errorf("lookup reset token: %w", err))
	}
	return personID, nil
}

func (r *resetTokenRepo) Consume(ctx context.Context, tokenHash string) (int64, error) {
	query := `DELETE FROM password_reset_token
              WHERE token_hash = $1 AND expires_at > now()
              RETURNING person_id`

	var personID int64
	if err := r.db.QueryRow(ctx, query, tokenHash).Scan(&personID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.InvalidSession()
		}
		return 0, apperror.Internal(fmt.Errorf("consume reset token: %w", err))
	}
	return personID, nil
}

func (r *resetTokenRepo) DeleteByPerson(ctx context.Context, personID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE person_id = $1`, personID); err != nil {
		return apperror.Internal(fmt.Errorf("delete reset tokens: %w", err))
	}
	return nil
}
