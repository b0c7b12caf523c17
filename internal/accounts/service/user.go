package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/contabr/accounts/internal/accounts/domain"
	"github.com/contabr/accounts/internal/accounts/store"
	"github.com/contabr/accounts/internal/accounts/validation"
	"github.com/contabr/accounts/pkg/cryptox"
	"github.com/contabr/accounts/pkg/jwtx"
	"github.com/contabr/accounts/pkg/slogx"
)

var (
	// ErrUserNotFound tags lookups of an absent identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuery tags persistence-layer failures, including unique-index races
	// that slipped past the pre-flight checks.
	ErrQuery = errors.New("query failed")
)

// CreateUserRequest carries the create payload. PasswordConfirmation is
// validated against Password and never persisted.
type CreateUserRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Document             string `json:"document" validate:"required,cpf"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// UpdateUserRequest carries the update payload. The password is not mutable
// through this path.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Document string `json:"document" validate:"required,cpf"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

// UserService implements the account operations. Failures come back as
// tagged kinds — validation.Errors, ErrUserNotFound, ErrQuery — so the
// transport layer can map them to status codes without inspecting messages.
type UserService struct {
	Store    store.Store
	Signer   *jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return users, nil
}

// Get fetches a single user by id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return u, nil
}

// Create validates the payload, persists the user and mints a bearer token,
// all inside one transaction. Any failure rolls the transaction back.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	var (
		out   domain.User
		token string
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		verrs := validation.Check(req)
		if err := s.checkUniqueness(ctx, tx, req.Document, req.Email, 0, verrs); err != nil {
			return err
		}
		if len(verrs) > 0 {
			return verrs
		}

		hash, err := cryptox.HashPassword(req.Password)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		u := domain.User{
			Name:         req.Name,
			Document:     req.Document,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		id, err := tx.Users().CreateUser(ctx, u)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}
		u.ID = id

		token, err = s.mintToken(u, now)
		if err != nil {
			return err
		}

		out = u
		return nil
	})
	if err != nil {
		return domain.User{}, "", err
	}

	log.Info("user created", "user_id", out.ID)
	return out, token, nil
}

// Update validates the payload and rewrites name, document and email.
// Uniqueness checks exclude the row's own id so an unchanged document or
// email does not self-conflict.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	var out domain.User

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		verrs := validation.Check(req)
		if err := s.checkUniqueness(ctx, tx, req.Document, req.Email, id, verrs); err != nil {
			return err
		}
		if len(verrs) > 0 {
			return verrs
		}

		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}

		u.Name = req.Name
		u.Document = req.Document
		u.Email = req.Email
		u.UpdatedAt = time.Now().UTC()

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}

		out = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user updated", "user_id", out.ID)
	return out, nil
}

// Delete removes the user. Absent ids surface as ErrUserNotFound, so a
// repeated delete is a 404, never a server error.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}

		if err := tx.Users().DeleteUser(ctx, id); err != nil {
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("user deleted", "user_id", id)
	return nil
}

// checkUniqueness runs the advisory document/email probes and appends field
// errors to verrs. The unique indexes remain the authoritative guard; these
// exist to produce field-level 422s instead of raw constraint failures.
func (s *UserService) checkUniqueness(
	ctx context.Context,
	tx store.Tx,
	document, email string,
	excludeID int64,
	verrs validation.Errors,
) error {
	if document != "" {
		taken, err := tx.Users().DocumentInUse(ctx, document, excludeID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}
		if taken {
			verrs.Add("document", "The document has already been taken.")
		}
	}

	if email != "" {
		taken, err := tx.Users().EmailInUse(ctx, email, excludeID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}
		if taken {
			verrs.Add("email", "The email has already been taken.")
		}
	}

	return nil
}

func (s *UserService) mintToken(u domain.User, now time.Time) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(strconv.FormatInt(u.ID, 10), u.Name, s.Issuer, ttl, now)
	return s.Signer.Sign(claims)
}
