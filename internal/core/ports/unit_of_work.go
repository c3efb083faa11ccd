package ports

import "context"

// Repositories bundles the repository set bound to one unit of work. Every
// call made through it runs on the same database transaction.
type Repositories struct {
	Users UserRepository
	Trips TripRepository
}

// UnitOfWork scopes one database transaction around fn. The implementation
// commits when fn returns nil and rolls back when it returns an error or
// panics; the underlying connection is released on every exit path, after the
// commit/rollback decision. Units of work do not nest.
type UnitOfWork interface {
	WithUnitOfWork(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
