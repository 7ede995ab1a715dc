package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type applicationUsecase struct {
	tx       domain.Transactor
	repos    domain.Repositories
	policy   domain.StatusPolicy
	validate *validator.Validate
	activity domain.ActivityRecorder
}

func NewApplicationUsecase(
	tx domain.Transactor,
	repos domain.Repositories,
	policy domain.StatusPolicy,
	validate *validator.Validate,
	activity domain.ActivityRecorder,
) domain.ApplicationUsecase {
	if policy == nil {
		policy = permissivePolicy{}
	}
	return &applicationUsecase{
		tx:       tx,
		repos:    repos,
		policy:   policy,
		validate: validate,
		activity: recorderOrNop(activity),
	}
}

func (u *applicationUsecase) RegisterApplication(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		id, err = repos.Applications.CreateIfNoneUnhandled(ctx, userID)
		return err
	})
	if err != nil {
		return 0, err
	}

	u.activity.Record(ctx, domain.LevelInfo, userID, domain.EventApplicationSubmit,
		fmt.Sprintf("Submitted application %d", id))
	return id, nil
}

func (u *applicationUsecase) GetApplicationsByStatus(ctx context.Context, query domain.BoardQuery, opts domain.BoardOptions) (*domain.ApplicationPage, error) {
	if err := validateStruct(u.validate, query); err != nil {
		return nil, err
	}

	page, total, err := u.repos.Applications.ListByStatus(ctx, query.Status, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	if err := u.attachAnswers(ctx, page, opts); err != nil {
		return nil, err
	}

	return &domain.ApplicationPage{
		Applications: page,
		Total:        total,
		HasMore:      int64(query.Offset+len(page)) < total,
	}, nil
}

func (u *applicationUsecase) attachAnswers(ctx context.Context, page []domain.ApplicationSummary, opts domain.BoardOptions) error {
	if len(page) == 0 {
		return nil
	}
	opts = opts.WithDefaults()

	ids := make([]int64, 0, len(page))
	for _, s := range page {
		ids = append(ids, s.PersonID)
	}
	summaries, err := u.repos.Applications.SummariesFor(ctx, ids)
	if err != nil {
		return err
	}

	for i := range page {
		summary := summaries[page[i].PersonID]
		competences := summary.Competences
		if competences == "" {
			competences = opts.NoCompetencesText
		}
		availability := summary.Availability
		if availability == "" {
			availability = opts.NoAvailabilityText
		}
		page[i].Answers = []domain.Answer{
			{Question: domain.QuestionCompetences, Answer: competences},
			{Question: domain.QuestionAvailability, Answer: availability},
		}
	}
	return nil
}

func (u *applicationUsecase) TransitionStatus(ctx context.Context, actorID, applicationID int64, req domain.StatusTransition) (*domain.Application, error) {
	if applicationID <= 0 {
		return nil, apperror.InvalidFormData("Application: must be a positive id")
	}
	if err := validateStruct(u.validate, req); err != nil {
		return nil, err
	}
	if !u.policy.Allowed(req.CurrentStatus, req.Status) {
		return nil, apperror.InvalidFormData(
			fmt.Sprintf("Status: cannot move from %s to %s", req.CurrentStatus, req.Status))
	}

	var app *domain.Application
	err := u.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		var err error
		app, err = repos.Applications.CompareAndSetStatus(ctx, applicationID, req.Status, req.CurrentStatus)
		return err
	})
	if err != nil {
		if apperror.Is(err, apperror.ErrStatusConflict) {
			u.activity.Record(ctx, domain.LevelInfo, actorID, domain.EventStatusConflict,
				fmt.Sprintf("Application %d was no longer %s", applicationID, req.CurrentStatus))
		}
		return nil, err
	}

	u.activity.Record(ctx, domain.LevelInfo, actorID, domain.EventStatusTransition,
		fmt.Sprintf("Application %d moved from %s to %s", applicationID, req.CurrentStatus, req.Status))
	return app, nil
}

func (u *applicationUsecase) GetSubmittedApplication(ctx context.Context, userID int64) (*domain.Application, error) {
	return u.repos.Applications.GetLatestByPerson(ctx, userID)
}

func (u *applicationUsecase) GetFullUserData(ctx context.Context, userID int64) (*domain.FullUserData, error) {
	return u.repos.Users.GetFullData(ctx, userID)
}

// GetApplicantProfile loads the four parts of the applicant page concurrently.
func (u *applicationUsecase) GetApplicantProfile(ctx context.Context, userID int64) (*domain.ApplicantProfile, error) {
	var profile domain.ApplicantProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile.User, err = u.repos.Users.GetFullData(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.Competences, err = u.repos.Competences.ListByPerson(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.Availability, err = u.repos.Availability.ListByPerson(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.Application, err = u.repos.Applications.GetLatestByPerson(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &profile, nil
}

var exportHeaders = []string{"ID", "FIRST NAME", "LAST NAME", "USERNAME", "EMAIL", "APPLICATION DATE", "STATUS", "COMPETENCES", "AVAILABILITY"}

// ExportBoard renders every application with status into an XLSX workbook.
func (u *applicationUsecase) ExportBoard(ctx context.Context, status domain.ApplicationStatus, opts domain.BoardOptions) ([]byte, string, error) {
	if !status.Valid() {
		return nil, "", apperror.InvalidFormData("Status: must be one of: unhandled, accepted, rejected")
	}

	rows, err := u.repos.Applications.ListAllByStatus(ctx, status)
	if err != nil {
		return nil, "", err
	}
	if err := u.attachAnswers(ctx, rows, opts); err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", apperror.Internal(err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range rows {
		values := []any{
			app.ID, app.Name.FirstName, app.Name.LastName, app.Username, app.Email,
			app.ApplicationDate, string(app.Status), answerFor(app, domain.QuestionCompetences),
			answerFor(app, domain.QuestionAvailability),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("applications_%s_%s.xlsx", status, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func answerFor(app domain.ApplicationSummary, question string) string {
	for _, a := range app.Answers {
		if a.Question == question {
			return a.Answer
		}
	}
	return ""
}
