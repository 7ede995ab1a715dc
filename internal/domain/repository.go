package domain

import "context"

// Repositories groups the repositories bound to one database handle, either
// the pool or an open transaction.
type Repositories struct {
	Users        UserRepository
	Sessions     SessionRepository
	Competences  CompetenceRepository
	Availability AvailabilityRepository
	Applications ApplicationRepository
	Activity     ActivityRepository
	ResetTokens  ResetTokenRepository
}

// Transactor runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
