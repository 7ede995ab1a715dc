package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
	"recruitment-portal/pkg/logger"
	"recruitment-portal/pkg/password"
)

type authUsecase struct {
	tx        domain.Transactor
	users     domain.UserRepository
	sessions  domain.SessionUsecase
	passwords *password.Hasher
	validate  *validator.Validate
	activity  domain.ActivityRecorder
	guard     domain.LoginGuard

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthUsecase(
	tx domain.Transactor,
	users domain.UserRepository,
	sessions domain.SessionUsecase,
	passwords *password.Hasher,
	validate *validator.Validate,
	activity domain.ActivityRecorder,
	opts ...AuthOption,
) domain.AuthUsecase {
	u := &authUsecase{
		tx:        tx,
		users:     users,
		sessions:  sessions,
		passwords: passwords,
		validate:  validate,
		activity:  recorderOrNop(activity),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type AuthOption func(*authUsecase)

// WithLoginGuard enables per-username lockout after repeated failures.
func WithLoginGuard(guard domain.LoginGuard) AuthOption {
	return func(u *authUsecase) {
		u.guard = guard
	}
}

func (u *authUsecase) RegisterUser(ctx context.Context, newUser domain.NewUser) (*domain.RegisterResult, error) {
	if err := validateStruct(u.validate, newUser); err != nil {
		return nil, err
	}

	hashed, err := u.passwords.Hash(newUser.Password)
	if err != nil {
		return nil, apperror.InvalidFormData(err.Error())
	}

	var result domain.RegisterResult
	err = u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		id, err := repos.Users.Create(ctx, &domain.User{
			Username:     newUser.Username,
			Email:        newUser.Email,
			PNR:          newUser.PNR,
			FirstName:    newUser.Name,
			LastName:     newUser.Surname,
			PasswordHash: hashed,
			RoleID:       domain.RoleIDApplicant,
		})
		if err != nil {
			return err
		}

		session, err := u.sessions.Issue(ctx, repos, id)
		if err != nil {
			return err
		}
		result = domain.RegisterResult{UserID: id, SessionData: session}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrConflictingSignupData) {
			u.activity.Record(ctx, domain.LevelError, 0, domain.EventSignupConflict,
				fmt.Sprintf("Signup conflict for username %q", newUser.Username))
		}
		return nil, err
	}

	u.activity.Record(ctx, domain.LevelInfo, result.UserID, domain.EventSignup, "User signed up")
	return &result, nil
}

// AuthenticateUser returns the same error for an unknown username and a
// wrong password, and spends a bcrypt comparison in both cases.
func (u *authUsecase) AuthenticateUser(ctx context.Context, credentials domain.Credentials) (*domain.AuthResult, error) {
	if err := validateStruct(u.validate, credentials); err != nil {
		return nil, err
	}

	if u.isBlocked(ctx, credentials.Username) {
		u.activity.Record(ctx, domain.LevelInfo, 0, domain.EventLoginBlocked,
			fmt.Sprintf("Blocked login for username %q", credentials.Username))
		return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
	}

	user, err := u.users.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		_ = u.passwords.Verify(u.dummy(), credentials.Password)
		u.recordFailure(ctx, credentials.Username)
		u.activity.Record(ctx, domain.LevelInfo, 0, domain.EventLoginFailed,
			fmt.Sprintf("Failed login for unknown username %q", credentials.Username))
		return nil, apperror.InvalidCredentials()
	}

	if err := u.passwords.Verify(user.PasswordHash, credentials.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			return nil, apperror.Internal(err)
		}
		u.recordFailure(ctx, credentials.Username)
		u.activity.Record(ctx, domain.LevelInfo, user.ID, domain.EventLoginFailed, "Failed login, wrong password")
		return nil, apperror.InvalidCredentials()
	}

	var session domain.SessionData
	err = u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		session, err = u.sessions.Issue(ctx, repos, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if u.guard != nil {
		if err := u.guard.Reset(ctx, credentials.Username); err != nil {
			logger.Log.Warn("login guard reset failed", "error", err)
		}
	}

	u.activity.Record(ctx, domain.LevelInfo, user.ID, domain.EventLogin, "User logged in")
	return &domain.AuthResult{
		UserData: domain.UserData{
			ID:       user.ID,
			Username: user.Username,
			RoleID:   user.RoleID,
			Role:     user.Role,
		},
		SessionData: session,
	}, nil
}

func (u *authUsecase) UpdateUserProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return apperror.InvalidFormData("No fields to update.")
	}
	if err := validateStruct(u.validate, update); err != nil {
		return err
	}

	fields := domain.UserFields{
		Username: update.Username,
		Email:    update.Email,
		PNR:      update.PNR,
	}
	if update.Password != "" {
		hashed, err := u.passwords.Hash(update.Password)
		if err != nil {
			return apperror.InvalidFormData(err.Error())
		}
		fields.PasswordHash = hashed
	}

	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Users.Update(ctx, userID, fields)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventProfileUpdate, "User updated profile")
	return nil
}

func (u *authUsecase) Logout(ctx context.Context, rawToken string) error {
	var actorID int64
	if user, err := u.sessions.Resolve(ctx, rawToken); err == nil {
		actorID = user.ID
	}

	if err := u.sessions.Delete(ctx, rawToken); err != nil {
		return err
	}

	if actorID != 0 {
		u.activity.Record(ctx, domain.LevelInfo, actorID, domain.EventLogout, "User logged out")
	}
	return nil
}

func (u *authUsecase) dummy() string {
	u.dummyOnce.Do(func() {
		u.dummyHash, _ = u.passwords.Hash("not-a-real-password-0")
	})
	return u.dummyHash
}

// Guard failures never prevent a login attempt.
func (u *authUsecase) isBlocked(ctx context.Context, username string) bool {
	if u.guard == nil {
		return false
	}
	blocked, err := u.guard.Blocked(ctx, username)
	if err != nil {
		logger.Log.Warn("login guard check failed", "error", err)
		return false
	}
	return blocked
}

func (u *authUsecase) recordFailure(ctx context.Context, username string) {
	if u.guard == nil {
		return
	}
	if err := u.guard.RecordFailure(ctx, username); err != nil {
		logger.Log.Warn("login guard record failed", "error", err)
	}
}
