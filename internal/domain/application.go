package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	StatusUnhandled ApplicationStatus = "unhandled"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the three board statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusUnhandled, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Board summary question keys
const (
	QuestionCompetences  = "competences"
	QuestionAvailability = "availability"
)

// Default fallback texts used when a board request does not supply its own.
const (
	DefaultNoCompetencesText  = "No competences listed"
	DefaultNoAvailabilityText = "No availability listed"
)

// Application is a row of the applications table
type Application struct {
	ID        int64             `json:"applicationID"`
	PersonID  int64             `json:"personID"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type ApplicantName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ApplicationSummary is one card on the recruiter board.
type ApplicationSummary struct {
	ID              int64             `json:"id"`
	PersonID        int64             `json:"-"`
	Name            ApplicantName     `json:"name"`
	Username        string            `json:"username"`
	Email           string            `json:"email"`
	ApplicationDate string            `json:"applicationDate"`
	Status          ApplicationStatus `json:"status"`
	Answers         []Answer          `json:"answers"`
}

// ApplicationPage is a page of the board for a single status.
type ApplicationPage struct {
	Applications []ApplicationSummary `json:"applications"`
	Total        int64                `json:"total"`
	HasMore      bool                 `json:"hasMore"`
}

// BoardOptions carries the texts shown when an applicant has listed nothing.
type BoardOptions struct {
	NoCompetencesText  string
	NoAvailabilityText string
}

// WithDefaults fills empty fallback texts.
func (o BoardOptions) WithDefaults() BoardOptions {
	if o.NoCompetencesText == "" {
		o.NoCompetencesText = DefaultNoCompetencesText
	}
	if o.NoAvailabilityText == "" {
		o.NoAvailabilityText = DefaultNoAvailabilityText
	}
	return o
}

// BoardQuery selects one page of the board.
type BoardQuery struct {
	Status ApplicationStatus `form:"status" validate:"required,oneof=unhandled accepted rejected"`
	Limit  int               `form:"limit" validate:"gte=1,lte=100"`
	Offset int               `form:"offset" validate:"gte=0"`
}

// StatusTransition is the recruiter's compare-and-swap request.
type StatusTransition struct {
	Status        ApplicationStatus `json:"status" validate:"required,oneof=unhandled accepted rejected,nefield=CurrentStatus"`
	CurrentStatus ApplicationStatus `json:"currentStatus" validate:"required,oneof=unhandled accepted rejected"`
}

// PersonSummary is the per-person aggregate joined onto board cards.
type PersonSummary struct {
	Competences  string
	Availability string
}

type ApplicationRepository interface {
	// CreateIfNoneUnhandled inserts an application unless the person already
	// has an unhandled one, in which case it returns
	// apperror.ErrConflictingApplication.
	CreateIfNoneUnhandled(ctx context.Context, personID int64) (int64, error)
	ListByStatus(ctx context.Context, status ApplicationStatus, limit, offset int) ([]ApplicationSummary, int64, error)
	ListAllByStatus(ctx context.Context, status ApplicationStatus) ([]ApplicationSummary, error)
	SummariesFor(ctx context.Context, personIDs []int64) (map[int64]PersonSummary, error)
	// CompareAndSetStatus returns apperror.ErrStatusConflict when the stored
	// status differs from expected or the application does not exist.
	CompareAndSetStatus(ctx context.Context, id int64, newStatus, expected ApplicationStatus) (*Application, error)
	GetLatestByPerson(ctx context.Context, personID int64) (*Application, error)
}

// StatusPolicy decides which transitions recruiters may perform.
type StatusPolicy interface {
	Allowed(from, to ApplicationStatus) bool
}

// ApplicantProfile is everything the applicant page shows at once.
type ApplicantProfile struct {
	User         *FullUserData    `json:"userData"`
	Competences  []UserCompetence `json:"competences"`
	Availability []Availability   `json:"availability"`
	Application  *Application     `json:"application,omitempty"`
}

type ApplicationUsecase interface {
	RegisterApplication(ctx context.Context, userID int64) (int64, error)
	GetApplicationsByStatus(ctx context.Context, query BoardQuery, opts BoardOptions) (*ApplicationPage, error)
	TransitionStatus(ctx context.Context, actorID, applicationID int64, req StatusTransition) (*Application, error)
	GetSubmittedApplication(ctx context.Context, userID int64) (*Application, error)
	GetFullUserData(ctx context.Context, userID int64) (*FullUserData, error)
	GetApplicantProfile(ctx context.Context, userID int64) (*ApplicantProfile, error)
	ExportBoard(ctx context.Context, status ApplicationStatus, opts BoardOptions) ([]byte, string, error)
}
