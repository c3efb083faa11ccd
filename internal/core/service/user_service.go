package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/api/metrics"
	"github.com/wanderplan/travel-planner-api/internal/auth"
	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// UserService implements registration, login, and profile updates. Every
// operation runs inside one unit of work: the duplicate-email pre-check and
// the insert share a transaction, with the unique index as the backstop
// against concurrent registration.
type UserService struct {
	uow    ports.UnitOfWork
	issuer *auth.TokenIssuer
	logger zerolog.Logger
}

func NewUserService(uow ports.UnitOfWork, issuer *auth.TokenIssuer, logger zerolog.Logger) *UserService {
	return &UserService{uow: uow, issuer: issuer, logger: logger}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var created *domain.User
	err = s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		// Pre-check for a clean conflict message; the unique index still
		// catches the race with a concurrent registration.
		_, err := repos.Users.FindByEmail(ctx, in.Email)
		if err == nil {
			return domain.ErrDuplicateEmail
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		created, err = repos.Users.Create(ctx, &domain.User{
			FullName:     in.FullName,
			Email:        in.Email,
			PasswordHash: hash,
			Address:      in.Address,
			PhoneNumber:  in.PhoneNumber,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(created.UserID.String(), created.Email, created.FullName)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("user_id", created.UserID.String()).Msg("user registered")

	public := *created
	public.PasswordHash = ""
	return &ports.AuthResult{AccessToken: token, User: &public}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var stored *domain.User
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		var err error
		stored, err = repos.Users.FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, stored.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(stored.UserID.String(), stored.Email, stored.FullName)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", stored.UserID.String()).Msg("user logged in")

	public := *stored
	public.PasswordHash = ""
	return &ports.AuthResult{AccessToken: token, User: &public}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user *domain.User
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch ports.UserPatch) (*domain.User, error) {
	var user *domain.User
	err := s.uow.WithUnitOfWork(ctx, func(ctx context.Context, repos ports.Repositories) error {
		var err error
		if patch.IsEmpty() {
			// Defined no-op: return current state, write nothing.
			user, err = repos.Users.FindByID(ctx, id)
			return err
		}
		user, err = repos.Users.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
