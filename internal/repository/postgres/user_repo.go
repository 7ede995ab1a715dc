package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type userRepo struct {
	db Querier
}

func NewUserRepository(db Querier) domain.UserRepository {
	return &userRepo{db: db}
}

const selectUser = `SELECT p.person_id, p.username, p.email, p.pnr, p.name, p.surname, p.password, p.role_id, r.name
	FROM person p
	JOIN role r ON r.role_id = p.role_id`

func (r *userRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	query := `INSERT INTO person (name, surname, pnr, email, password, role_id, username)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING person_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.PNR, user.Email, user.PasswordHash, user.RoleID, user.Username,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return 0, apperror.ConflictingSignupData()
		}
		return 0, translateConstraint(err, "create person")
	}
	return id, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE p.username = $1`, username)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE p.email = $1`, email)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PNR, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.RoleID, &user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(fmt.Errorf("get person: %w", err))
	}
	return &user, nil
}

func (r *userRepo) GetFullData(ctx context.Context, id int64) (*domain.FullUserData, error) {
	query := `SELECT person_id, username, role_id, email, name, surname, pnr
              FROM person WHERE person_id = $1`

	var data domain.FullUserData
	err := r.db.QueryRow(ctx, query, id).Scan(
		&data.ID, &data.Username, &data.RoleID, &data.Email, &data.FirstName, &data.LastName, &data.PNR,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(fmt.Errorf("get full user data: %w", err))
	}
	return &data, nil
}

// Update writes only the non-empty fields.
func (r *userRepo) Update(ctx context.Context, id int64, fields domain.UserFields) error {
	b := newUpdateBuilder("person").
		SetNonEmpty("username", fields.Username).
		SetNonEmpty("email", fields.Email).
		SetNonEmpty("pnr", fields.PNR).
		SetNonEmpty("password", fields.PasswordHash)
	if b.Len() == 0 {
		return apperror.InvalidFormData("No fields to update.")
	}

	query, args := b.Where("person_id", id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperror.ConflictingSignupData()
		}
		return translateConstraint(err, "update person")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
