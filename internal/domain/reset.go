package domain

import (
	"context"
	"time"
)

type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ResetCredentialsRequest sets a new username and/or password using a reset
// token. At least one of the two must be present.
type ResetCredentialsRequest struct {
	Token    string `json:"token" validate:"required"`
	Username string `json:"username" validate:"omitempty,min=3"`
	Password string `json:"password" validate:"omitempty,min=8,max=72,strong_password"`
}

// IssuedResetToken is returned to the caller in place of an email.
type IssuedResetToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ResetTokenRepository interface {
	// Replace drops the person's previous tokens and stores a new one.
	Replace(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) error
	// GetPersonID returns the owner of an unexpired token or
	// apperror.ErrInvalidSession.
	GetPersonID(ctx context.Context, tokenHash string) (int64, error)
	// Consume deletes an unexpired token and returns its owner, or
	// apperror.ErrInvalidSession. Only one caller can consume a token.
	Consume(ctx context.Context, tokenHash string) (int64, error)
	DeleteByPerson(ctx context.Context, personID int64) error
}

type ResetUsecase interface {
	RequestReset(ctx context.Context, req ResetRequest) (*IssuedResetToken, error)
	ValidateResetToken(ctx context.Context, req ResetTokenRequest) error
	ResetCredentials(ctx context.Context, req ResetCredentialsRequest) error
}
