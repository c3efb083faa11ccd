package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// Gateway scopes one pooled connection and one transaction around each unit
// of work. Units of work do not nest: every call checks out its own
// connection.
type Gateway struct {
	pool *pgxpool.Pool
}

func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// WithUnitOfWork acquires a connection, begins a transaction, and runs fn
// with repositories bound to that transaction. The transaction commits when
// fn returns nil and rolls back when fn returns an error or panics (the
// panic is rethrown). The connection is released on every exit path, after
// the commit/rollback decision.
func (g *Gateway) WithUnitOfWork(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) (err error) {
	conn, err := g.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	err = fn(ctx, ports.Repositories{
		Users: NewUserRepository(tx),
		Trips: NewTripRepository(tx),
	})
	return err
}
