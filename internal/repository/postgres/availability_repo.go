package postgres

import (
	"context"
	"fmt"
	"time"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type availabilityRepo struct {
	db Querier
}

func NewAvailabilityRepository(db Querier) domain.AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(ctx context.Context, personID int64, from, to domain.Date) (int64, error) {
	query := `INSERT INTO availability (person_id, from_date, to_date)
              VALUES ($1, $2, $3)
              RETURNING availability_id`

	var id int64
	if err := r.db.QueryRow(ctx, query, personID, from.Time, to.Time).Scan(&id); err != nil {
		return 0, translateConstraint(err, "create availability")
	}
	return id, nil
}

func (r *availabilityRepo) Update(ctx context.Context, personID, availabilityID int64, from, to domain.Date) error {
	query := `UPDATE availability SET from_date = $1, to_date = $2
              WHERE availability_id = $3 AND person_id = $4`

	tag, err := r.db.Exec(ctx, query, from.Time, to.Time, availabilityID, personID)
	if err != nil {
		return translateConstraint(err, "update availability")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Availability not found")
	}
	return nil
}

func (r *availabilityRepo) Delete(ctx context.Context, personID, availabilityID int64) error {
	query := `DELETE FROM availability WHERE availability_id = $1 AND person_id = $2`

	tag, err := r.db.Exec(ctx, query, availabilityID, personID)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete availability: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Availability not found")
	}
	return nil
}

func (r *availabilityRepo) ListByPerson(ctx context.Context, personID int64) ([]domain.Availability, error) {
	query := `SELECT availability_id, from_date, to_date
              FROM availability
              WHERE person_id = $1
              ORDER BY from_date, to_date, availability_id`

	rows, err := r.db.Query(ctx, query, personID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list availability: %w", err))
	}
	defer rows.Close()

	ranges := []domain.Availability{}
	for rows.Next() {
		var (
			a        domain.Availability
			from, to time.Time
		)
		if err := rows.Scan(&a.ID, &from, &to); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan availability: %w", err))
		}
		a.FromDate, a.ToDate = domain.NewDate(from), domain.NewDate(to)
		ranges = append(ranges, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return ranges, nil
}
