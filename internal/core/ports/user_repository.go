package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
)

// UserPatch carries the optional fields of a partial user update. A nil field
// is left untouched; field order never affects the result.
type UserPatch struct {
	FullName    *string
	Address     *string
	PhoneNumber *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.FullName == nil && p.Address == nil && p.PhoneNumber == nil
}

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// Create inserts a new user and returns it with the store-generated id.
	// Returns domain.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns the stored user including the password hash.
	// Internal use only (login); never expose the result directly.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns the user without the password hash.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Update applies only the fields present in the patch and returns the
	// updated record. Returns domain.ErrUserNotFound if the id does not exist.
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (*domain.User, error)
}
