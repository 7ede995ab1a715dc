package main

import (
	"context"
	"time"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/logger"
)

// runSessionJanitor deletes expired sessions every interval until ctx is
// done. A non-positive interval disables it.
func runSessionJanitor(ctx context.Context, sessions domain.SessionUsecase, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.PurgeExpired(ctx)
			if err != nil {
				logger.Log.Error("Failed to purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				logger.Log.Info("Purged expired sessions", "count", n)
			}
		}
	}
}
