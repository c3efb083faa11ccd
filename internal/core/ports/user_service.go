package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
)

// RegisterInput is the validated payload for account creation.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Address     *string
	PhoneNumber *string
}

// AuthResult is what registration and login hand back to the transport layer:
// a signed bearer token plus the public user record.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// UserService implements account registration, authentication, and profile
// maintenance.
type UserService interface {
	// Register creates the account, hashes the password, and issues a token.
	// Returns domain.ErrDuplicateEmail when the email is taken.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login exchanges credentials for a token. Unknown email and wrong
	// password both collapse into domain.ErrInvalidCredentials so callers
	// cannot probe for account existence.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Get returns the public user record.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Update applies a partial update. An empty patch is a no-op that
	// returns the current record.
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (*domain.User, error)
}
