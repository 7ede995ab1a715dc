package domain

import (
	"context"
	"time"
)

// SessionCookieName is the cookie carrying the raw session token.
const SessionCookieName = "session"

// GeneratedSession is a freshly minted token. Only TokenHash is persisted.
type GeneratedSession struct {
	Token     string
	TokenHash string
	ExpiresAt time.Time
}

// SessionData is the session handed back to the client.
type SessionData struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"personID"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionRepository interface {
	Create(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) (int64, error)
	// GetUserByTokenHash returns the owner of an unexpired session, or
	// apperror.ErrInvalidSession.
	GetUserByTokenHash(ctx context.Context, tokenHash string) (*UserData, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type SessionUsecase interface {
	Generate() (GeneratedSession, error)
	// Issue generates a session and stores it through repos, which is
	// normally bound to the caller's transaction.
	Issue(ctx context.Context, repos Repositories, personID int64) (SessionData, error)
	Resolve(ctx context.Context, rawToken string) (*UserData, error)
	Delete(ctx context.Context, rawToken string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
