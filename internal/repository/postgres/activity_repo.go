package postgres

import (
	"context"
	"fmt"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/activity"
	"recruitment-portal/pkg/apperror"
)

type activityRepo struct {
	db Querier
}

func NewActivityRepository(db Querier) domain.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Insert(ctx context.Context, entry *domain.ActivityEntry) (int64, error) {
	query := `INSERT INTO log (level, event_type, message, ip, user_agent, actor_person_id)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING log_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		entry.Level, entry.EventType, entry.Message,
		nullIfEmpty(entry.IP), nullIfEmpty(entry.UserAgent), nullIfZero(entry.ActorID),
	).Scan(&id)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("insert activity: %w", err))
	}
	return id, nil
}

// PersistActivity adapts repo to the activity logger's persistence hook.
func PersistActivity(repo domain.ActivityRepository) activity.PersistFunc {
	return func(ctx context.Context, e activity.Entry) error {
		_, err := repo.Insert(ctx, &domain.ActivityEntry{
			Level:     e.Level,
			EventType: e.EventType,
			Message:   e.Message,
			IP:        e.IP,
			UserAgent: e.UserAgent,
			ActorID:   e.ActorID,
		})
		return err
	}
}
