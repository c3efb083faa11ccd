package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// UserRepository is the Postgres implementation of ports.UserRepository.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO users (fullname, email, password, address, phonenumber)
		VALUES (@fullname, @email, @password, @address, @phonenumber)
		RETURNING userid, fullname, email, password, address, phonenumber`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"fullname":    user.FullName,
		"email":       user.Email,
		"password":    user.PasswordHash,
		"address":     user.Address,
		"phonenumber": user.PhoneNumber,
	})

	created, err := scanUserWithHash(row)
	if err != nil {
		if pgErrorCode(err) == uniqueViolationCode {
			// Lost the race against a concurrent registration; the unique
			// index on email is the authority.
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("postgres.UserRepository.Create: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
		SELECT userid, fullname, email, password, address, phonenumber
		FROM users
		WHERE email = @email`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email})
	user, err := scanUserWithHash(row)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres.UserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
		SELECT userid, fullname, email, address, phonenumber
		FROM users
		WHERE userid = @userid`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"userid": id})
	user, err := scanUserPublic(row)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres.UserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch ports.UserPatch) (*domain.User, error) {
	set := newSetClauses()
	if patch.FullName != nil {
		set.add("fullname", *patch.FullName)
	}
	if patch.Address != nil {
		set.add("address", *patch.Address)
	}
	if patch.PhoneNumber != nil {
		set.add("phonenumber", *patch.PhoneNumber)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	args := set.args
	args["userid"] = id
	q := `UPDATE users SET ` + set.clause() + `
		WHERE userid = @userid
		RETURNING userid, fullname, email, address, phonenumber`

	user, err := scanUserPublic(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres.UserRepository.Update: %w", err)
	}
	return user, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUserWithHash(s scanner) (*domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := s.Scan(&id, &u.FullName, &u.Email, &u.PasswordHash, &u.Address, &u.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u.UserID = uuid.UUID(id.Bytes)
	return &u, nil
}

func scanUserPublic(s scanner) (*domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := s.Scan(&id, &u.FullName, &u.Email, &u.Address, &u.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u.UserID = uuid.UUID(id.Bytes)
	return &u, nil
}
