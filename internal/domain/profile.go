package domain

import "context"

// Competence is a catalog entry, name already resolved for a locale.
type Competence struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserCompetence is a competence claimed on a user's profile.
type UserCompetence struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	YearsOfExperience   float64 `json:"yearsOfExperience"`
	CompetenceProfileID int64   `json:"competenceProfileID"`
}

// Availability is a date range, both ends inclusive.
type Availability struct {
	ID       int64 `json:"availabilityID"`
	FromDate Date  `json:"fromDate"`
	ToDate   Date  `json:"toDate"`
}

// SetCompetenceRequest upserts a competence on the caller's profile.
type SetCompetenceRequest struct {
	CompetenceID      int64   `json:"competenceID" validate:"required,gt=0"`
	YearsOfExperience float64 `json:"yearsOfExperience" validate:"gt=0,max=99"`
}

type DeleteCompetenceRequest struct {
	CompetenceProfileID int64 `json:"competenceProfileID" validate:"required,gt=0"`
}

type CompetenceListRequest struct {
	Locale string `json:"locale" validate:"required,locale"`
}

type AddAvailabilityRequest struct {
	FromDate string `json:"fromDate" validate:"required,iso_date"`
	ToDate   string `json:"toDate" validate:"required,iso_date"`
}

type SetAvailabilityRequest struct {
	AvailabilityID int64  `json:"availabilityID" validate:"required,gt=0"`
	FromDate       string `json:"fromDate" validate:"required,iso_date"`
	ToDate         string `json:"toDate" validate:"required,iso_date"`
}

type DeleteAvailabilityRequest struct {
	AvailabilityID int64 `json:"availabilityID" validate:"required,gt=0"`
}

type CompetenceRepository interface {
	Upsert(ctx context.Context, personID, competenceID int64, years float64) error
	// Delete removes a profile row owned by personID and fails with
	// apperror.ErrNotFound when no such row exists.
	Delete(ctx context.Context, personID, competenceProfileID int64) error
	ListByPerson(ctx context.Context, personID int64) ([]UserCompetence, error)
	ListCatalog(ctx context.Context, locale string) ([]Competence, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, personID int64, from, to Date) (int64, error)
	Update(ctx context.Context, personID, availabilityID int64, from, to Date) error
	Delete(ctx context.Context, personID, availabilityID int64) error
	ListByPerson(ctx context.Context, personID int64) ([]Availability, error)
}

type ProfileUsecase interface {
	SetCompetence(ctx context.Context, userID int64, req SetCompetenceRequest) error
	DeleteCompetence(ctx context.Context, userID int64, req DeleteCompetenceRequest) error
	ListCompetences(ctx context.Context, userID int64) ([]UserCompetence, error)
	ListCatalog(ctx context.Context, req CompetenceListRequest) ([]Competence, error)
	AddAvailability(ctx context.Context, userID int64, req AddAvailabilityRequest) (int64, error)
	UpdateAvailability(ctx context.Context, userID int64, req SetAvailabilityRequest) error
	DeleteAvailability(ctx context.Context, userID int64, req DeleteAvailabilityRequest) error
	ListAvailability(ctx context.Context, userID int64) ([]Availability, error)
}
