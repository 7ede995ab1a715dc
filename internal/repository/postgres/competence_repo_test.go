package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitment-portal/pkg/apperror"
)

func TestCompetenceRepo_Upsert(t *testing.T) {
	upsert := regexp.QuoteMeta("ON CONFLICT (person_id, competence_id)")

	t.Run("insert or overwrite years", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(upsert).WithArgs(int64(1), int64(2), 3.0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(upsert).WithArgs(int64(1), int64(2), 5.0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := NewCompetenceRepository(mock)
		require.NoError(t, repo.Upsert(context.Background(), 1, 2, 3))
		require.NoError(t, repo.Upsert(context.Background(), 1, 2, 5))
	})

	t.Run("unknown competence", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(upsert).WithArgs(int64(1), int64(404), 2.0).
			WillReturnError(pgError(pgForeignKeyViolation))

		err := NewCompetenceRepository(mock).Upsert(context.Background(), 1, 404, 2)
		assert.ErrorIs(t, err, apperror.ErrInvalidFormData)
	})
}

func TestCompetenceRepo_Delete(t *testing.T) {
	del := regexp.QuoteMeta("WHERE competence_profile_id = $1 AND person_id = $2")

	t.Run("owned row", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(del).WithArgs(int64(7), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, NewCompetenceRepository(mock).Delete(context.Background(), 1, 7))
	})

	t.Run("row of another user", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(del).WithArgs(int64(8), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := NewCompetenceRepository(mock).Delete(context.Background(), 1, 8)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestCompetenceRepo_ListCatalog(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(ct.name, c.name)")).
		WithArgs("sv").
		WillReturnRows(pgxmock.NewRows([]string{"competence_id", "name"}).
			AddRow(int64(1), "biljettförsäljning").
			AddRow(int64(4), "zookeeping"))

	catalog, err := NewCompetenceRepository(mock).ListCatalog(context.Background(), "sv")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "zookeeping", catalog[1].Name)
}

func TestCompetenceRepo_ListByPerson(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE cp.person_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"competence_id", "name", "years_of_experience", "competence_profile_id"}).
			AddRow(int64(2), "lotteries", 2.5, int64(10)))

	list, err := NewCompetenceRepository(mock).ListByPerson(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2.5, list[0].YearsOfExperience)
	assert.Equal(t, int64(10), list[0].CompetenceProfileID)
}
