package v1_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) RegisterUser(ctx context.Context, newUser domain.NewUser) (*domain.RegisterResult, error) {
	args := m.Called(ctx, newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterResult), args.Error(1)
}

func (m *MockAuthUC) AuthenticateUser(ctx context.Context, credentials domain.Credentials) (*domain.AuthResult, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) UpdateUserProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) error {
	return m.Called(ctx, userID, update).Error(0)
}

func (m *MockAuthUC) Logout(ctx context.Context, rawToken string) error {
	return m.Called(ctx, rawToken).Error(0)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) RegisterApplication(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationUC) GetApplicationsByStatus(ctx context.Context, query domain.BoardQuery, opts domain.BoardOptions) (*domain.ApplicationPage, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationPage), args.Error(1)
}

func (m *MockApplicationUC) TransitionStatus(ctx context.Context, actorID, applicationID int64, req domain.StatusTransition) (*domain.Application, error) {
	args := m.Called(ctx, actorID, applicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) GetSubmittedApplication(ctx context.Context, userID int64) (*domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) GetFullUserData(ctx context.Context, userID int64) (*domain.FullUserData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FullUserData), args.Error(1)
}

func (m *MockApplicationUC) GetApplicantProfile(ctx context.Context, userID int64) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicantProfile), args.Error(1)
}

func (m *MockApplicationUC) ExportBoard(ctx context.Context, status domain.ApplicationStatus, opts domain.BoardOptions) ([]byte, string, error) {
	args := m.Called(ctx, status, opts)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockProfileUC struct {
	mock.Mock
}

func (m *MockProfileUC) SetCompetence(ctx context.Context, userID int64, req domain.SetCompetenceRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockProfileUC) DeleteCompetence(ctx context.Context, userID int64, req domain.DeleteCompetenceRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockProfileUC) ListCompetences(ctx context.Context, userID int64) ([]domain.UserCompetence, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCompetence), args.Error(1)
}

func (m *MockProfileUC) ListCatalog(ctx context.Context, req domain.CompetenceListRequest) ([]domain.Competence, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Competence), args.Error(1)
}

func (m *MockProfileUC) AddAvailability(ctx context.Context, userID int64, req domain.AddAvailabilityRequest) (int64, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileUC) UpdateAvailability(ctx context.Context, userID int64, req domain.SetAvailabilityRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockProfileUC) DeleteAvailability(ctx context.Context, userID int64, req domain.DeleteAvailabilityRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockProfileUC) ListAvailability(ctx context.Context, userID int64) ([]domain.Availability, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Availability), args.Error(1)
}

type MockResetUC struct {
	mock.Mock
}

func (m *MockResetUC) RequestReset(ctx context.Context, req domain.ResetRequest) (*domain.IssuedResetToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedResetToken), args.Error(1)
}

func (m *MockResetUC) ValidateResetToken(ctx context.Context, req domain.ResetTokenRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockResetUC) ResetCredentials(ctx context.Context, req domain.ResetCredentialsRequest) error {
	return m.Called(ctx, req).Error(0)
}

// fakeSessions resolves a fixed set of raw tokens.
type fakeSessions struct {
	users map[string]*domain.UserData
}

func (f *fakeSessions) Generate() (domain.GeneratedSession, error) {
	return domain.GeneratedSession{}, nil
}

func (f *fakeSessions) Issue(context.Context, domain.Repositories, int64) (domain.SessionData, error) {
	return domain.SessionData{}, nil
}

func (f *fakeSessions) Resolve(_ context.Context, raw string) (*domain.UserData, error) {
	if u, ok := f.users[raw]; ok {
		return u, nil
	}
	return nil, apperror.InvalidSession()
}

func (f *fakeSessions) Delete(context.Context, string) error { return nil }

func (f *fakeSessions) PurgeExpired(context.Context) (int64, error) { return 0, nil }

type fakeHealth struct {
	healthy bool
}

func (f fakeHealth) Check(context.Context) (map[string]string, bool) {
	if f.healthy {
		return map[string]string{"status": "ok", "database": "ok"}, true
	}
	return map[string]string{"status": "degraded", "database": "connection refused"}, false
}
