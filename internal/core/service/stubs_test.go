package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

// stubUnitOfWork runs fn against fixed stub repositories and records the
// commit/rollback decision the real gateway would have made.
type stubUnitOfWork struct {
	repos     ports.Repositories
	commits   int
	rollbacks int
}

func (u *stubUnitOfWork) WithUnitOfWork(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	err := fn(ctx, u.repos)
	if err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

type stubUserRepo struct {
	users       map[uuid.UUID]*domain.User
	createCalls int
	updateCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalls++
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	stored := cloneUser(user)
	stored.UserID = uuid.New()
	r.users[stored.UserID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	public := cloneUser(u)
	public.PasswordHash = ""
	return public, nil
}

func (r *stubUserRepo) Update(_ context.Context, id uuid.UUID, patch ports.UserPatch) (*domain.User, error) {
	r.updateCalls++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Address != nil {
		u.Address = patch.Address
	}
	if patch.PhoneNumber != nil {
		u.PhoneNumber = patch.PhoneNumber
	}
	public := cloneUser(u)
	public.PasswordHash = ""
	return public, nil
}

type stubTripRepo struct {
	trips       map[uuid.UUID]*domain.Trip
	createCalls int
	updateCalls int
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[uuid.UUID]*domain.Trip)}
}

func cloneTrip(t *domain.Trip) *domain.Trip {
	clone := *t
	return &clone
}

func (r *stubTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.createCalls++
	stored := cloneTrip(trip)
	stored.TripID = uuid.New()
	r.trips[stored.TripID] = stored
	return cloneTrip(stored), nil
}

func (r *stubTripRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	var out []domain.Trip
	for _, t := range r.trips {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	// Mirrors the ORDER BY plandate DESC of the real query.
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlanDate.After(out[j].PlanDate.Time)
	})
	return out, nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	return cloneTrip(t), nil
}

func (r *stubTripRepo) Update(_ context.Context, id uuid.UUID, patch ports.TripPatch) (*domain.Trip, error) {
	r.updateCalls++
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if patch.DestinationName != nil {
		t.DestinationName = *patch.DestinationName
	}
	if patch.PlanDate != nil {
		t.PlanDate = *patch.PlanDate
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.TripHighlights != nil {
		t.TripHighlights = patch.TripHighlights
	}
	if patch.LinkPdf != nil {
		t.LinkPdf = patch.LinkPdf
	}
	if patch.ImgLink != nil {
		t.ImgLink = patch.ImgLink
	}
	return cloneTrip(t), nil
}

func (r *stubTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

func newStubUnitOfWork() (*stubUnitOfWork, *stubUserRepo, *stubTripRepo) {
	users := newStubUserRepo()
	trips := newStubTripRepo()
	return &stubUnitOfWork{repos: ports.Repositories{Users: users, Trips: trips}}, users, trips
}
