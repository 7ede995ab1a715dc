package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
	"recruitment-portal/pkg/password"
	"recruitment-portal/pkg/token"
)

// DefaultResetTokenTTL bounds how long a reset link stays usable.
const DefaultResetTokenTTL = time.Hour

type resetUsecase struct {
	tx        domain.Transactor
	repos     domain.Repositories
	hasher    *token.Hasher
	passwords *password.Hasher
	validate  *validator.Validate
	activity  domain.ActivityRecorder
	ttl       time.Duration
	now       func() time.Time
}

func NewResetUsecase(
	tx domain.Transactor,
	repos domain.Repositories,
	hasher *token.Hasher,
	passwords *password.Hasher,
	validate *validator.Validate,
	activity domain.ActivityRecorder,
	ttl time.Duration,
) domain.ResetUsecase {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return &resetUsecase{
		tx:        tx,
		repos:     repos,
		hasher:    hasher,
		passwords: passwords,
		validate:  validate,
		activity:  recorderOrNop(activity),
		ttl:       ttl,
		now:       time.Now,
	}
}

// RequestReset issues a reset token for the account behind req.Email. The
// raw token is returned to the caller since mail delivery is not wired.
func (u *resetUsecase) RequestReset(ctx context.Context, req domain.ResetRequest) (*domain.IssuedResetToken, error) {
	if err := validateStruct(u.validate, req); err != nil {
		return nil, err
	}
	if u.hasher == nil {
		return nil, apperror.Misconfigured("Missing SESSION_SECRET environment variable.")
	}

	user, err := u.repos.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	raw, err := token.Generate(token.DefaultSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	expiresAt := u.now().Add(u.ttl)

	err = u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.ResetTokens.Replace(ctx, user.ID, u.hasher.Hash(raw), expiresAt)
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, domain.LevelInfo, user.ID, domain.EventResetRequested, "Password reset requested")
	return &domain.IssuedResetToken{Token: raw, ExpiresAt: expiresAt}, nil
}

func (u *resetUsecase) ValidateResetToken(ctx context.Context, req domain.ResetTokenRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}
	if u.hasher == nil {
		return apperror.Misconfigured("Missing SESSION_SECRET environment variable.")
	}
	_, err := u.repos.ResetTokens.GetPersonID(ctx, u.hasher.Hash(req.Token))
	return err
}

// ResetCredentials consumes the token, updates username and/or password and
// drops the account's other reset tokens in one transaction.
func (u *resetUsecase) ResetCredentials(ctx context.Context, req domain.ResetCredentialsRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}
	if req.Username == "" && req.Password == "" {
		return apperror.InvalidFormData("No fields to update.")
	}
	if u.hasher == nil {
		return apperror.Misconfigured("Missing SESSION_SECRET environment variable.")
	}

	fields := domain.UserFields{Username: req.Username}
	if req.Password != "" {
		hashed, err := u.passwords.Hash(req.Password)
		if err != nil {
			return apperror.InvalidFormData(err.Error())
		}
		fields.PasswordHash = hashed
	}

	var personID int64
	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		personID, err = repos.ResetTokens.Consume(ctx, u.hasher.Hash(req.Token))
		if err != nil {
			return err
		}
		if err := repos.Users.Update(ctx, personID, fields); err != nil {
			return err
		}
		return repos.ResetTokens.DeleteByPerson(ctx, personID)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, personID, domain.EventResetCompleted, "Credentials reset")
	return nil
}
