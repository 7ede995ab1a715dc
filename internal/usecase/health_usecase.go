package usecase

import (
	"context"
	"time"
)

// Checker probes one dependency.
type Checker func(ctx context.Context) error

type HealthUsecase interface {
	// Check reports "ok" or the failure per dependency, and whether the
	// required ones are all healthy.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	required map[string]Checker
	optional map[string]Checker
}

// NewHealthUsecase takes the database probe as required; optional probes
// (Redis) only degrade the report.
func NewHealthUsecase(database Checker, optional map[string]Checker) HealthUsecase {
	return &healthUsecase{
		required: map[string]Checker{"database": database},
		optional: optional,
	}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := map[string]string{"status": "ok"}
	healthy := true
	for name, check := range u.required {
		if err := check(ctx); err != nil {
			report[name] = err.Error()
			healthy = false
			continue
		}
		report[name] = "ok"
	}
	for name, check := range u.optional {
		if err := check(ctx); err != nil {
			report[name] = "unavailable"
			continue
		}
		report[name] = "ok"
	}
	if !healthy {
		report["status"] = "degraded"
	}
	return report, healthy
}
