package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type profileUsecase struct {
	tx       domain.Transactor
	repos    domain.Repositories
	validate *validator.Validate
	activity domain.ActivityRecorder
}

// NewProfileUsecase takes repos bound to the pool for reads; every mutation
// goes through tx.
func NewProfileUsecase(
	tx domain.Transactor,
	repos domain.Repositories,
	validate *validator.Validate,
	activity domain.ActivityRecorder,
) domain.ProfileUsecase {
	return &profileUsecase{
		tx:       tx,
		repos:    repos,
		validate: validate,
		activity: recorderOrNop(activity),
	}
}

func (u *profileUsecase) SetCompetence(ctx context.Context, userID int64, req domain.SetCompetenceRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}

	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Competences.Upsert(ctx, userID, req.CompetenceID, req.YearsOfExperience)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventCompetenceSet,
		fmt.Sprintf("Set competence %d to %g years", req.CompetenceID, req.YearsOfExperience))
	return nil
}

func (u *profileUsecase) DeleteCompetence(ctx context.Context, userID int64, req domain.DeleteCompetenceRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}

	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Competences.Delete(ctx, userID, req.CompetenceProfileID)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventCompetenceDelete,
		fmt.Sprintf("Deleted competence profile %d", req.CompetenceProfileID))
	return nil
}

func (u *profileUsecase) ListCompetences(ctx context.Context, userID int64) ([]domain.UserCompetence, error) {
	return u.repos.Competences.ListByPerson(ctx, userID)
}

func (u *profileUsecase) ListCatalog(ctx context.Context, req domain.CompetenceListRequest) ([]domain.Competence, error) {
	if err := validateStruct(u.validate, req); err != nil {
		return nil, err
	}
	return u.repos.Competences.ListCatalog(ctx, strings.ToLower(req.Locale))
}

func (u *profileUsecase) AddAvailability(ctx context.Context, userID int64, req domain.AddAvailabilityRequest) (int64, error) {
	if err := validateStruct(u.validate, req); err != nil {
		return 0, err
	}
	from, to, err := parseRange(req.FromDate, req.ToDate)
	if err != nil {
		return 0, err
	}

	var id int64
	err = u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		id, err = repos.Availability.Create(ctx, userID, from, to)
		return err
	})
	if err != nil {
		return 0, err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventAvailabilityAdd,
		fmt.Sprintf("Added availability %s to %s", from, to))
	return id, nil
}

func (u *profileUsecase) UpdateAvailability(ctx context.Context, userID int64, req domain.SetAvailabilityRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}
	from, to, err := parseRange(req.FromDate, req.ToDate)
	if err != nil {
		return err
	}

	err = u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Availability.Update(ctx, userID, req.AvailabilityID, from, to)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventAvailabilityUpdate,
		fmt.Sprintf("Updated availability %d to %s to %s", req.AvailabilityID, from, to))
	return nil
}

func (u *profileUsecase) DeleteAvailability(ctx context.Context, userID int64, req domain.DeleteAvailabilityRequest) error {
	if err := validateStruct(u.validate, req); err != nil {
		return err
	}

	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Availability.Delete(ctx, userID, req.AvailabilityID)
	})
	if err != nil {
		return err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventAvailabilityDelete,
		fmt.Sprintf("Deleted availability %d", req.AvailabilityID))
	return nil
}

func (u *profileUsecase) ListAvailability(ctx context.Context, userID int64) ([]domain.Availability, error) {
	return u.repos.Availability.ListByPerson(ctx, userID)
}

// parseRange parses both ends and rejects from after to. The database CHECK
// enforces the same rule.
func parseRange(fromStr, toStr string) (domain.Date, domain.Date, error) {
	from, err := domain.ParseDate(fromStr)
	if err != nil {
		return domain.Date{}, domain.Date{}, apperror.InvalidFormData("From date: must be a date in the format YYYY-MM-DD")
	}
	to, err := domain.ParseDate(toStr)
	if err != nil {
		return domain.Date{}, domain.Date{}, apperror.InvalidFormData("To date: must be a date in the format YYYY-MM-DD")
	}
	if from.After(to.Time) {
		return domain.Date{}, domain.Date{}, apperror.InvalidFormData("From date: must not be after to date")
	}
	return from, to, nil
}
