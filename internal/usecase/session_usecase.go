package usecase

import (
	"context"
	"time"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
	"recruitment-portal/pkg/token"
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 7 * 24 * time.Hour

type sessionUsecase struct {
	sessions domain.SessionRepository
	hasher   *token.Hasher
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionUsecase wires the session manager. A nil hasher means no secret
// is configured; every operation then fails with a misconfiguration error.
func NewSessionUsecase(sessions domain.SessionRepository, hasher *token.Hasher, ttl time.Duration) domain.SessionUsecase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionUsecase{
		sessions: sessions,
		hasher:   hasher,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (u *sessionUsecase) hash(raw string) (string, error) {
	if u.hasher == nil {
		return "", apperror.Misconfigured("Missing SESSION_SECRET environment variable.")
	}
	return u.hasher.Hash(raw), nil
}

func (u *sessionUsecase) Generate() (domain.GeneratedSession, error) {
	raw, err := token.Generate(token.DefaultSize)
	if err != nil {
		return domain.GeneratedSession{}, apperror.Internal(err)
	}
	hashed, err := u.hash(raw)
	if err != nil {
		return domain.GeneratedSession{}, err
	}
	return domain.GeneratedSession{
		Token:     raw,
		TokenHash: hashed,
		ExpiresAt: u.now().Add(u.ttl),
	}, nil
}

func (u *sessionUsecase) Issue(ctx context.Context, repos domain.Repositories, personID int64) (domain.SessionData, error) {
	gen, err := u.Generate()
	if err != nil {
		return domain.SessionData{}, err
	}
	id, err := repos.Sessions.Create(ctx, personID, gen.TokenHash, gen.ExpiresAt)
	if err != nil {
		return domain.SessionData{}, err
	}
	return domain.SessionData{
		ID:        id,
		PersonID:  personID,
		Token:     gen.Token,
		ExpiresAt: gen.ExpiresAt,
	}, nil
}

func (u *sessionUsecase) Resolve(ctx context.Context, rawToken string) (*domain.UserData, error) {
	if rawToken == "" {
		return nil, apperror.InvalidSession()
	}
	hashed, err := u.hash(rawToken)
	if err != nil {
		return nil, err
	}
	return u.sessions.GetUserByTokenHash(ctx, hashed)
}

// Delete is a no-op for an empty or unknown token.
func (u *sessionUsecase) Delete(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	hashed, err := u.hash(rawToken)
	if err != nil {
		return err
	}
	_, err = u.sessions.DeleteByTokenHash(ctx, hashed)
	return err
}

func (u *sessionUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx)
}
