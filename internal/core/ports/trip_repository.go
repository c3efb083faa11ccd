package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
)

// TripPatch carries the optional fields of a partial trip update. The owning
// user and the trip id are immutable and therefore absent.
type TripPatch struct {
	DestinationName *string
	PlanDate        *domain.Date
	StartDate       *domain.Date
	EndDate         *domain.Date
	TripHighlights  *string
	LinkPdf         *string
	ImgLink         *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TripPatch) IsEmpty() bool {
	return p.DestinationName == nil &&
		p.PlanDate == nil &&
		p.StartDate == nil &&
		p.EndDate == nil &&
		p.TripHighlights == nil &&
		p.LinkPdf == nil &&
		p.ImgLink == nil
}

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create inserts a new trip and returns it with the store-generated id.
	// The foreign key to users is the backstop: a violation surfaces as
	// domain.ErrUserNotFound.
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)

	// ListByUser returns all trips for the user ordered by plan date
	// descending. A user with no trips yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// FindByID returns a single trip, or domain.ErrTripNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	// Update applies only the fields present in the patch and returns the
	// updated record. Returns domain.ErrTripNotFound if the id does not exist.
	Update(ctx context.Context, id uuid.UUID, patch TripPatch) (*domain.Trip, error)

	// Delete removes the trip, or returns domain.ErrTripNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
