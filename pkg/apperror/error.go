package apperror

import (
	"errors"
	"net/http"
)

// Error kinds. Every AppError built by the constructors below wraps one of
// these, so callers can match with errors.Is instead of comparing messages.
var (
	ErrInvalidFormData        = errors.New("invalid form data")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidSession         = errors.New("invalid session")
	ErrConflictingSignupData  = errors.New("conflicting signup data")
	ErrConflictingApplication = errors.New("conflicting application")
	ErrStatusConflict         = errors.New("status conflict")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrTooManyRequests        = errors.New("too many requests")
	ErrMisconfigured          = errors.New("server misconfigured")
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidFormData(message string) *AppError {
	if message == "" {
		message = "The provided form data is invalid."
	}
	return New(http.StatusBadRequest, message, ErrInvalidFormData)
}

// NotFound is reported as 400: a missing row on update/delete means the
// caller sent an id it does not own, which is bad input rather than a
// missing resource.
func NotFound(message string) *AppError {
	return New(http.StatusBadRequest, message, ErrNotFound)
}

func InvalidCredentials() *AppError {
	return New(http.StatusUnauthorized, "The provided credentials are invalid.", ErrInvalidCredentials)
}

func InvalidSession() *AppError {
	return New(http.StatusUnauthorized, "The session is invalid or has expired.", ErrInvalidSession)
}

func ConflictingSignupData() *AppError {
	return New(http.StatusConflict, "A user with the provided details already exists.", ErrConflictingSignupData)
}

func ConflictingApplication() *AppError {
	return New(http.StatusConflict, "The user already has an unhandled application.", ErrConflictingApplication)
}

func StatusConflict() *AppError {
	return New(http.StatusConflict, "Status has changed", ErrStatusConflict)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, ErrForbidden)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, ErrTooManyRequests)
}

func Misconfigured(message string) *AppError {
	return New(http.StatusInternalServerError, message, ErrMisconfigured)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Is reports whether err carries the given kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
