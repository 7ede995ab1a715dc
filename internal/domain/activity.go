package domain

import (
	"context"
	"time"
)

// Activity log levels as stored in the log table
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)

// Activity event types
const (
	EventSignup             = "SIGNUP"
	EventSignupConflict     = "SIGNUP_CONFLICT"
	EventLogin              = "LOGIN"
	EventLoginFailed        = "LOGIN_FAILED"
	EventLoginBlocked       = "LOGIN_BLOCKED"
	EventLogout             = "LOGOUT"
	EventProfileUpdate      = "PROFILE_UPDATE"
	EventCompetenceSet      = "COMPETENCE_SET"
	EventCompetenceDelete   = "COMPETENCE_DELETE"
	EventAvailabilityAdd    = "AVAILABILITY_ADD"
	EventAvailabilityUpdate = "AVAILABILITY_UPDATE"
	EventAvailabilityDelete = "AVAILABILITY_DELETE"
	EventApplicationSubmit  = "APPLICATION_SUBMIT"
	EventStatusTransition   = "STATUS_TRANSITION"
	EventStatusConflict     = "STATUS_CONFLICT"
	EventResetRequested     = "RESET_REQUESTED"
	EventResetCompleted     = "RESET_COMPLETED"
)

// ActivityEntry is a row of the log table. Zero ActorID means the event is
// not tied to a user.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	EventType string    `json:"eventType"`
	Message   string    `json:"message"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	ActorID   int64     `json:"actorID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ActivityRepository interface {
	Insert(ctx context.Context, entry *ActivityEntry) (int64, error)
}

// ActivityRecorder receives activity events from the usecases. Implementations
// must not block the caller on failure.
type ActivityRecorder interface {
	Record(ctx context.Context, level string, actorID int64, eventType, message string)
}
