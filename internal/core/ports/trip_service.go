package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
)

// CreateTripInput is the validated payload for trip creation.
type CreateTripInput struct {
	UserID          uuid.UUID
	DestinationName string
	PlanDate        domain.Date
	StartDate       domain.Date
	EndDate         domain.Date
	TripHighlights  *string
	LinkPdf         *string
	ImgLink         *string
}

// TripService implements trip CRUD on behalf of the handlers.
type TripService interface {
	// Create inserts a trip after confirming the owning user exists.
	// Returns domain.ErrUserNotFound otherwise; no row is inserted.
	Create(ctx context.Context, in CreateTripInput) (*domain.Trip, error)

	// ListByUser returns the user's trips, most recent plan date first.
	// Returns domain.ErrUserNotFound when the user is missing; a user with
	// no trips gets an empty slice.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// Get returns a single trip.
	Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	// Update applies a partial update. An empty patch returns the existing
	// record without writing.
	Update(ctx context.Context, id uuid.UUID, patch TripPatch) (*domain.Trip, error)

	// Delete removes a trip. A second delete of the same id returns
	// domain.ErrTripNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
