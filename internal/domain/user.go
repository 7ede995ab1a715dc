package domain

import (
	"context"
)

// Roles as stored in the role table
const (
	RoleRecruiter = "recruiter"
	RoleApplicant = "applicant"

	RoleIDRecruiter int64 = 1
	RoleIDApplicant int64 = 2
)

// User is a row of the person table.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PNR          string `json:"pnr"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"-"`
	RoleID       int64  `json:"roleID"`
	Role         string `json:"role"`
}

// UserData is the identity returned after login and by whoami.
type UserData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleID   int64  `json:"roleID"`
	Role     string `json:"role"`
}

// FullUserData is the applicant-facing personal information.
type FullUserData struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	RoleID    int64  `json:"roleID"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PNR       string `json:"pnr"`
}

// NewUser is the signup payload.
type NewUser struct {
	Name     string `json:"name" validate:"required,min=2"`
	Surname  string `json:"surname" validate:"required,min=2"`
	PNR      string `json:"pnr" validate:"required,pnr"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72,strong_password"`
	Username string `json:"username" validate:"required,min=3"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate carries the user fields that may change. Empty strings mean
// "leave unchanged".
type ProfileUpdate struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	PNR      string `json:"pnr" validate:"omitempty,pnr"`
	Password string `json:"password" validate:"omitempty,min=8,max=72,strong_password"`
}

// IsEmpty reports whether no field is set.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == "" && p.Email == "" && p.PNR == "" && p.Password == ""
}

// UserFields is the already hashed column set handed to UserRepository.Update.
type UserFields struct {
	Username     string
	Email        string
	PNR          string
	PasswordHash string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetFullData(ctx context.Context, id int64) (*FullUserData, error)
	Update(ctx context.Context, id int64, fields UserFields) error
}

// AuthResult is returned by AuthenticateUser.
type AuthResult struct {
	UserData    UserData    `json:"userData"`
	SessionData SessionData `json:"sessionData"`
}

// RegisterResult is returned by RegisterUser.
type RegisterResult struct {
	UserID      int64       `json:"userID"`
	SessionData SessionData `json:"sessionData"`
}

// LoginGuard locks a username out after repeated failed logins.
type LoginGuard interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type AuthUsecase interface {
	RegisterUser(ctx context.Context, newUser NewUser) (*RegisterResult, error)
	AuthenticateUser(ctx context.Context, credentials Credentials) (*AuthResult, error)
	UpdateUserProfile(ctx context.Context, userID int64, update ProfileUpdate) error
	Logout(ctx context.Context, rawToken string) error
}
