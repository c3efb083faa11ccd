package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

func seedUser(t *testing.T, users *stubUserRepo) uuid.UUID {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{
		FullName:     "Ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.UserID
}

func tripInput(userID uuid.UUID, destination string, planDate domain.Date) ports.CreateTripInput {
	return ports.CreateTripInput{
		UserID:          userID,
		DestinationName: destination,
		PlanDate:        planDate,
		StartDate:       planDate,
		EndDate:         domain.NewDate(2026, time.December, 31),
	}
}

func TestTripService_Create(t *testing.T) {
	uow, users, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	trip, err := svc.Create(context.Background(), tripInput(userID, "Kyoto", domain.NewDate(2026, time.October, 12)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trip.TripID == uuid.Nil {
		t.Errorf("Create: trip id not assigned")
	}
	if trip.UserID != userID {
		t.Errorf("Create: UserID = %v, want %v", trip.UserID, userID)
	}
	if trip.DestinationName != "Kyoto" {
		t.Errorf("Create: DestinationName = %q", trip.DestinationName)
	}
	if uow.commits != 1 {
		t.Errorf("commits = %d, want 1", uow.commits)
	}
}

func TestTripService_Create_UserMissing(t *testing.T) {
	uow, _, trips := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())

	_, err := svc.Create(context.Background(), tripInput(uuid.New(), "Kyoto", domain.NewDate(2026, time.October, 12)))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("Create: error = %v, want ErrUserNotFound", err)
	}
	if trips.createCalls != 0 {
		t.Errorf("Create reached the trip repository: createCalls = %d", trips.createCalls)
	}
	if uow.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
	}
}

func TestTripService_ListByUser(t *testing.T) {
	uow, users, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	for _, plan := range []domain.Date{
		domain.NewDate(2026, time.September, 1),
		domain.NewDate(2026, time.November, 20),
		domain.NewDate(2026, time.October, 5),
	} {
		if _, err := svc.Create(context.Background(), tripInput(userID, "Somewhere", plan)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	trips, err := svc.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("ListByUser: len = %d, want 3", len(trips))
	}
	for i := 1; i < len(trips); i++ {
		if trips[i].PlanDate.After(trips[i-1].PlanDate.Time) {
			t.Errorf("ListByUser: trips not ordered by plan date descending")
		}
	}
}

func TestTripService_ListByUser_NoTrips(t *testing.T) {
	uow, users, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	trips, err := svc.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if trips == nil {
		t.Fatalf("ListByUser: got nil, want empty slice")
	}
	if len(trips) != 0 {
		t.Errorf("ListByUser: len = %d, want 0", len(trips))
	}
}

func TestTripService_ListByUser_UserMissing(t *testing.T) {
	uow, _, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())

	_, err := svc.ListByUser(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("ListByUser: error = %v, want ErrUserNotFound", err)
	}
}

func TestTripService_Update(t *testing.T) {
	uow, users, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	created, err := svc.Create(context.Background(), tripInput(userID, "Kyoto", domain.NewDate(2026, time.October, 12)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	dest := "Osaka"
	highlights := "castle, street food"
	updated, err := svc.Update(context.Background(), created.TripID, ports.TripPatch{
		DestinationName: &dest,
		TripHighlights:  &highlights,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DestinationName != "Osaka" {
		t.Errorf("Update: DestinationName = %q", updated.DestinationName)
	}
	if updated.TripHighlights == nil || *updated.TripHighlights != highlights {
		t.Errorf("Update: TripHighlights = %v", updated.TripHighlights)
	}
	if updated.PlanDate.String() != "2026-10-12" {
		t.Errorf("Update: untouched PlanDate changed: %s", updated.PlanDate)
	}
}

func TestTripService_Update_EmptyPatch(t *testing.T) {
	uow, users, trips := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	created, err := svc.Create(context.Background(), tripInput(userID, "Kyoto", domain.NewDate(2026, time.October, 12)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), created.TripID, ports.TripPatch{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DestinationName != "Kyoto" {
		t.Errorf("empty patch changed state: DestinationName = %q", got.DestinationName)
	}
	if trips.updateCalls != 0 {
		t.Errorf("empty patch reached the repository: updateCalls = %d", trips.updateCalls)
	}
}

func TestTripService_Delete(t *testing.T) {
	uow, users, _ := newStubUnitOfWork()
	svc := NewTripService(uow, zerolog.Nop())
	userID := seedUser(t, users)

	created, err := svc.Create(context.Background(), tripInput(userID, "Kyoto", domain.NewDate(2026, time.October, 12)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.TripID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.TripID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Errorf("Get after delete: error = %v, want ErrTripNotFound", err)
	}

	// Deleting again reports not found.
	if err := svc.Delete(context.Background(), created.TripID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Errorf("second Delete: error = %v, want ErrTripNotFound", err)
	}
}
