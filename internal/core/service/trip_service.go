package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/api/metrics"
	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// TripService implements trip CRUD. Referential integrity to the owning user
// is checked explicitly before every insert so a missing user surfaces as a
// domain error rather than a raw constraint violation; the foreign key
// remains the backstop against a concurrently vanishing user.
type TripService struct {
	uow    ports.UnitOfWork
	logger zerolog.Logger
}

func NewTripService(uow ports.UnitOfWork, logger zerolog.Logger) *TripService {
	return &TripService{uow: uow, logger: logger}
}

func (s *TripService) Create(ctx context.Context, in ports.CreateTripInput) (*domain.Trip, error) {
	var created *domain.Trip
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, in.UserID); err != nil {
			return err
		}

		var err error
		created, err = repos.Trips.Create(ctx, &domain.Trip{
			UserID:          in.UserID,
			DestinationName: in.DestinationName,
			PlanDate:        in.PlanDate,
			StartDate:       in.StartDate,
			EndDate:         in.EndDate,
			TripHighlights:  in.TripHighlights,
			LinkPdf:         in.LinkPdf,
			ImgLink:         in.ImgLink,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.TripsCreatedTotal.Inc()
	s.logger.Info().
		Str("trip_id", created.TripID.String()).
		Str("user_id", created.UserID.String()).
		Str("destination", created.DestinationName).
		Msg("trip created")
	return created, nil
}

func (s *TripService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, userID); err != nil {
			return err
		}

		var err error
		trips, err = repos.Trips.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		var err error
		trip, err = repos.Trips.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch ports.TripPatch) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		var err error
		if patch.IsEmpty() {
			trip, err = repos.Trips.FindByID(ctx, id)
			return err
		}
		trip, err = repos.Trips.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		return repos.Trips.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	metrics.TripsDeletedTotal.Inc()
	s.logger.Info().Str("trip_id", id.String()).Msg("trip deleted")
	return nil
}
