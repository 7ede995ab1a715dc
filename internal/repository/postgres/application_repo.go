package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type applicationRepo struct {
	db Querier
}

func NewApplicationRepository(db Querier) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const selectBoardRows = `SELECT a.application_id, a.person_id, p.name, p.surname, p.username, p.email, a.created_at, a.status
	FROM applications a
	JOIN person p ON p.person_id = a.person_id
	WHERE a.status = $1
	ORDER BY a.created_at DESC, a.application_id DESC`

// CreateIfNoneUnhandled relies on the single statement being atomic; the
// partial unique index catches the race between two concurrent inserts.
func (r *applicationRepo) CreateIfNoneUnhandled(ctx context.Context, personID int64) (int64, error) {
	query := `INSERT INTO applications (person_id)
              SELECT $1::bigint
              WHERE NOT EXISTS (
                  SELECT 1 FROM applications WHERE person_id = $1 AND status = 'unhandled'
              )
              RETURNING application_id`

	var id int64
	err := r.db.QueryRow(ctx, query, personID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgUniqueViolation {
			return 0, apperror.ConflictingApplication()
		}
		return 0, translateConstraint(err, "create application")
	}
	return id, nil
}

// pooled is satisfied by the pool but not by a transaction.
type pooled interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// ListByStatus runs the page and count queries concurrently when bound to the
// pool. A transaction owns a single connection, so there they run one after
// the other.
func (r *applicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus, limit, offset int) ([]domain.ApplicationSummary, int64, error) {
	var (
		page  []domain.ApplicationSummary
		total int64
	)

	loadPage := func(ctx context.Context) error {
		var err error
		page, err = r.queryBoard(ctx, selectBoardRows+` LIMIT $2 OFFSET $3`, string(status), limit, offset)
		return err
	}
	loadTotal := func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE status = $1`, string(status)).Scan(&total)
		if err != nil {
			return apperror.Internal(fmt.Errorf("count applications: %w", err))
		}
		return nil
	}

	if _, ok := r.db.(pooled); !ok {
		if err := loadPage(ctx); err != nil {
			return nil, 0, err
		}
		if err := loadTotal(ctx); err != nil {
			return nil, 0, err
		}
		return page, total, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadPage(gctx) })
	g.Go(func() error { return loadTotal(gctx) })
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func (r *applicationRepo) ListAllByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationSummary, error) {
	return r.queryBoard(ctx, selectBoardRows, string(status))
}

func (r *applicationRepo) queryBoard(ctx context.Context, query string, args ...any) ([]domain.ApplicationSummary, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list applications: %w", err))
	}
	defer rows.Close()

	summaries := []domain.ApplicationSummary{}
	for rows.Next() {
		var (
			s         domain.ApplicationSummary
			createdAt time.Time
			status    string
		)
		if err := rows.Scan(
			&s.ID, &s.PersonID, &s.Name.FirstName, &s.Name.LastName, &s.Username, &s.Email, &createdAt, &status,
		); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan application: %w", err))
		}
		s.ApplicationDate = createdAt.UTC().Format(domain.DateLayout)
		s.Status = domain.ApplicationStatus(status)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return summaries, nil
}

// SummariesFor aggregates competences as "name (N years)" and availability
// as "from to to" for each person. Persons with nothing listed get empty
// strings.
func (r *applicationRepo) SummariesFor(ctx context.Context, personIDs []int64) (map[int64]domain.PersonSummary, error) {
	summaries := make(map[int64]domain.PersonSummary, len(personIDs))
	if len(personIDs) == 0 {
		return summaries, nil
	}

	query := `SELECT p.person_id,
                  COALESCE((
                      SELECT STRING_AGG(CONCAT(c.name, ' (', cp.years_of_experience::float8, ' years)'), ', ' ORDER BY c.name)
                      FROM competence_profile cp
                      JOIN competence c ON c.competence_id = cp.competence_id
                      WHERE cp.person_id = p.person_id
                  ), ''),
                  COALESCE((
                      SELECT STRING_AGG(CONCAT(av.from_date, ' to ', av.to_date), ', ' ORDER BY av.from_date, av.to_date)
                      FROM availability av
                      WHERE av.person_id = p.person_id
                  ), '')
              FROM person p
              WHERE p.person_id = ANY($1::bigint[])`

	rows, err := r.db.Query(ctx, query, pq.Array(personIDs))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("summarize applicants: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			s  domain.PersonSummary
		)
		if err := rows.Scan(&id, &s.Competences, &s.Availability); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan applicant summary: %w", err))
		}
		summaries[id] = s
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return summaries, nil
}

func (r *applicationRepo) CompareAndSetStatus(ctx context.Context, id int64, newStatus, expected domain.ApplicationStatus) (*domain.Application, error) {
	query := `UPDATE applications SET status = $1
              WHERE application_id = $2 AND status = $3
              RETURNING application_id, person_id, status, created_at`

	app, err := scanApplication(r.db.QueryRow(ctx, query, string(newStatus), id, string(expected)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.StatusConflict()
		}
		return nil, translateConstraint(err, "transition application")
	}
	return app, nil
}

// GetLatestByPerson returns nil without error when the person never applied.
func (r *applicationRepo) GetLatestByPerson(ctx context.Context, personID int64) (*domain.Application, error) {
	query := `SELECT application_id, person_id, status, created_at
              FROM applications
              WHERE person_id = $1
              ORDER BY created_at DESC, application_id DESC
              LIMIT 1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, personID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(fmt.Errorf("get application: %w", err))
	}
	return app, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		app    domain.Application
		status string
	)
	if err := row.Scan(&app.ID, &app.PersonID, &status, &app.CreatedAt); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	return &app, nil
}
