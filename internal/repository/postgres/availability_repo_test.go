package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAvailabilityRepo_Create(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO availability (person_id, from_date, to_date)")

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		from, to := mustDate(t, "2025-05-01"), mustDate(t, "2025-06-01")
		mock.ExpectQuery(insert).WithArgs(int64(1), from.Time, to.Time).
			WillReturnRows(pgxmock.NewRows([]string{"availability_id"}).AddRow(int64(21)))

		id, err := NewAvailabilityRepository(mock).Create(context.Background(), 1, from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
	})

	t.Run("check violation becomes invalid form data", func(t *testing.T) {
		mock := newMock(t)
		from, to := mustDate(t, "2025-06-01"), mustDate(t, "2025-05-01")
		mock.ExpectQuery(insert).WithArgs(int64(1), from.Time, to.Time).
			WillReturnError(pgError(pgCheckViolation))

		_, err := NewAvailabilityRepository(mock).Create(context.Background(), 1, from, to)
		assert.ErrorIs(t, err, apperror.ErrInvalidFormData)
	})
}

func TestAvailabilityRepo_UpdateAndDelete(t *testing.T) {
	from, to := mustDate(t, "2025-05-01"), mustDate(t, "2025-06-01")

	t.Run("update matches id and owner", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("WHERE availability_id = $3 AND person_id = $4")).
			WithArgs(from.Time, to.Time, int64(21), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := NewAvailabilityRepository(mock).Update(context.Background(), 1, 21, from, to)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability WHERE availability_id = $1 AND person_id = $2")).
			WithArgs(int64(21), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, NewAvailabilityRepository(mock).Delete(context.Background(), 1, 21))
	})
}

func TestAvailabilityRepo_ListByPerson(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY from_date, to_date, availability_id")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"availability_id", "from_date", "to_date"}).
			AddRow(int64(2), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)).
			AddRow(int64(1), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)))

	list, err := NewAvailabilityRepository(mock).ListByPerson(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-05-01", list[0].FromDate.String())
	assert.Equal(t, "2025-06-09", list[1].ToDate.String())
}
