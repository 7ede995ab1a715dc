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

type sessionRepo struct {
	db Querier
}

func NewSessionRepository(db Querier) domain.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) (int64, error) {
	query := `INSERT INTO session (person_id, token_hash, expires_at)
              VALUES ($1, $2, $3)
              RETURNING session_id`

	var id int64
	if err := r.db.QueryRow(ctx, query, personID, tokenHash, expiresAt).Scan(&id); err != nil {
		return 0, apperror.Internal(fmt.Errorf("create session: %w", err))
	}
	return id, nil
}

// Expired rows are filtered here even if the janitor has not removed them yet.
func (r *sessionRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (*domain.UserData, error) {
	query := `SELECT p.person_id, p.username, r.role_id, r.name
              FROM session s
              JOIN person p ON s.person_id = p.person_id
              JOIN role r ON p.role_id = r.role_id
              WHERE s.token_hash = $1 AND s.expires_at > now()`

	var user domain.UserData
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(&user.ID, &user.Username, &user.RoleID, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InvalidSession()
		}
		return nil, apperror.Internal(fmt.Errorf("resolve session: %w", err))
	}
	return &user, nil
}

func (r *sessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("delete session: %w", err))
	}
	return tag.RowsAffected(), nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session WHERE expires_at <= now()`)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("purge sessions: %w", err))
	}
	return tag.RowsAffected(), nil
}
