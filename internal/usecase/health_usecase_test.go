package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitment-portal/internal/usecase"
)

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	report, healthy := usecase.NewHealthUsecase(ok, map[string]usecase.Checker{"redis": down}).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "ok", report["database"])
	assert.Equal(t, "unavailable", report["redis"])

	report, healthy = usecase.NewHealthUsecase(down, nil).Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", report["status"])
	assert.Equal(t, "connection refused", report["database"])
}
