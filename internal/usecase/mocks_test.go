package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"recruitment-portal/internal/domain"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetFullData(ctx context.Context, id int64) (*domain.FullUserData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FullUserData), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, id int64, fields domain.UserFields) error {
	return m.Called(ctx, id, fields).Error(0)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) (int64, error) {
	args := m.Called(ctx, personID, tokenHash, expiresAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (*domain.UserData, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserData), args.Error(1)
}

func (m *MockSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCompetenceRepo struct {
	mock.Mock
}

func (m *MockCompetenceRepo) Upsert(ctx context.Context, personID, competenceID int64, years float64) error {
	return m.Called(ctx, personID, competenceID, years).Error(0)
}

func (m *MockCompetenceRepo) Delete(ctx context.Context, personID, competenceProfileID int64) error {
	return m.Called(ctx, personID, competenceProfileID).Error(0)
}

func (m *MockCompetenceRepo) ListByPerson(ctx context.Context, personID int64) ([]domain.UserCompetence, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCompetence), args.Error(1)
}

func (m *MockCompetenceRepo) ListCatalog(ctx context.Context, locale string) ([]domain.Competence, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Competence), args.Error(1)
}

type MockAvailabilityRepo struct {
	mock.Mock
}

func (m *MockAvailabilityRepo) Create(ctx context.Context, personID int64, from, to domain.Date) (int64, error) {
	args := m.Called(ctx, personID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvailabilityRepo) Update(ctx context.Context, personID, availabilityID int64, from, to domain.Date) error {
	return m.Called(ctx, personID, availabilityID, from, to).Error(0)
}

func (m *MockAvailabilityRepo) Delete(ctx context.Context, personID, availabilityID int64) error {
	return m.Called(ctx, personID, availabilityID).Error(0)
}

func (m *MockAvailabilityRepo) ListByPerson(ctx context.Context, personID int64) ([]domain.Availability, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Availability), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) CreateIfNoneUnhandled(ctx context.Context, personID int64) (int64, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus, limit, offset int) ([]domain.ApplicationSummary, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ApplicationSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepo) ListAllByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationSummary, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationSummary), args.Error(1)
}

func (m *MockApplicationRepo) SummariesFor(ctx context.Context, personIDs []int64) (map[int64]domain.PersonSummary, error) {
	args := m.Called(ctx, personIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.PersonSummary), args.Error(1)
}

func (m *MockApplicationRepo) CompareAndSetStatus(ctx context.Context, id int64, newStatus, expected domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, id, newStatus, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetLatestByPerson(ctx context.Context, personID int64) (*domain.Application, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

type MockResetTokenRepo struct {
	mock.Mock
}

func (m *MockResetTokenRepo) Replace(ctx context.Context, personID int64, tokenHash string, expiresAt time.Time) error {
	return m.Called(ctx, personID, tokenHash, expiresAt).Error(0)
}

func (m *MockResetTokenRepo) GetPersonID(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResetTokenRepo) Consume(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResetTokenRepo) DeleteByPerson(ctx context.Context, personID int64) error {
	return m.Called(ctx, personID).Error(0)
}

// fakeTransactor hands fn the same mocked repositories and counts calls.
type fakeTransactor struct {
	repos domain.Repositories
	calls int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	f.calls++
	return fn(f.repos)
}

type recordedActivity struct {
	Level     string
	ActorID   int64
	EventType string
}

type recordingActivity struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (r *recordingActivity) Record(_ context.Context, level string, actorID int64, eventType, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, recordedActivity{Level: level, ActorID: actorID, EventType: eventType})
}

func (r *recordingActivity) events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.EventType)
	}
	return out
}

type fixture struct {
	users        *MockUserRepo
	sessions     *MockSessionRepo
	competences  *MockCompetenceRepo
	availability *MockAvailabilityRepo
	applications *MockApplicationRepo
	resetTokens  *MockResetTokenRepo
	tx           *fakeTransactor
	activity     *recordingActivity
}

func newFixture() *fixture {
	f := &fixture{
		users:        new(MockUserRepo),
		sessions:     new(MockSessionRepo),
		competences:  new(MockCompetenceRepo),
		availability: new(MockAvailabilityRepo),
		applications: new(MockApplicationRepo),
		resetTokens:  new(MockResetTokenRepo),
		activity:     &recordingActivity{},
	}
	f.tx = &fakeTransactor{repos: f.repos()}
	return f
}

func (f *fixture) repos() domain.Repositories {
	return domain.Repositories{
		Users:        f.users,
		Sessions:     f.sessions,
		Competences:  f.competences,
		Availability: f.availability,
		Applications: f.applications,
		ResetTokens:  f.resetTokens,
	}
}
