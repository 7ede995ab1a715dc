package postgres

import (
	"context"
	"fmt"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type competenceRepo struct {
	db Querier
}

func NewCompetenceRepository(db Querier) domain.CompetenceRepository {
	return &competenceRepo{db: db}
}

func (r *competenceRepo) Upsert(ctx context.Context, personID, competenceID int64, years float64) error {
	query := `INSERT INTO competence_profile (person_id, competence_id, years_of_experience)
              VALUES ($1, $2, $3)
              ON CONFLICT (person_id, competence_id)
              DO UPDATE SET years_of_experience = EXCLUDED.years_of_experience`

	if _, err := r.db.Exec(ctx, query, personID, competenceID, years); err != nil {
		return translateConstraint(err, "upsert competence")
	}
	return nil
}

func (r *competenceRepo) Delete(ctx context.Context, personID, competenceProfileID int64) error {
	query := `DELETE FROM competence_profile
              WHERE competence_profile_id = $1 AND person_id = $2`

	tag, err := r.db.Exec(ctx, query, competenceProfileID, personID)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete competence: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Competence not found")
	}
	return nil
}

func (r *competenceRepo) ListByPerson(ctx context.Context, personID int64) ([]domain.UserCompetence, error) {
	query := `SELECT c.competence_id, c.name, cp.years_of_experience::float8, cp.competence_profile_id
              FROM competence_profile cp
              JOIN competence c ON c.competence_id = cp.competence_id
              WHERE cp.person_id = $1
              ORDER BY cp.competence_profile_id`

	rows, err := r.db.Query(ctx, query, personID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list competences: %w", err))
	}
	defer rows.Close()

	competences := []domain.UserCompetence{}
	for rows.Next() {
		var c domain.UserCompetence
		if err := rows.Scan(&c.ID, &c.Name, &c.YearsOfExperience, &c.CompetenceProfileID); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan competence: %w", err))
		}
		competences = append(competences, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return competences, nil
}

// ListCatalog resolves names for locale, falling back to the canonical name.
func (r *competenceRepo) ListCatalog(ctx context.Context, locale string) ([]domain.Competence, error) {
	query := `SELECT c.competence_id, COALESCE(ct.name, c.name)
              FROM competence c
              LEFT JOIN competence_translation ct
                ON ct.competence_id = c.competence_id AND ct.locale = $1
              ORDER BY c.competence_id`

	rows, err := r.db.Query(ctx, query, locale)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list catalog: %w", err))
	}
	defer rows.Close()

	catalog := []domain.Competence{}
	for rows.Next() {
		var c domain.Competence
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan catalog: %w", err))
		}
		catalog = append(catalog, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return catalog, nil
}
