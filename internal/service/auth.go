// Package service contains application services for auth, catalog and admin.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/crypto"
	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/limiter"
	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/repository"
	"github.com/infinityui/backend/internal/token"
)

// AuthService defines account and session operations.
type AuthService interface {
	// SignUp creates a new customer account.
	SignUp(ctx context.Context, name, email, password string) (*model.User, error)
	// SignIn authenticates with rate limiting and mints a session token.
	SignIn(ctx context.Context, email, password, ip string) (signed string, claims model.SessionClaims, err error)
	// CurrentUser re-fetches the authenticated account from the database.
	// The token only resolves identity; role and purchase state come live.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	purchases repository.PurchaseRepository
	tokens    *token.Manager
	hasher    *crypto.Hasher
	lim       limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(
	users repository.UserRepository,
	purchases repository.PurchaseRepository,
	tokens *token.Manager,
	hasher *crypto.Hasher,
	lim limiter.Limiter,
) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, purchases: purchases, tokens: tokens, hasher: hasher, lim: lim}
}

// SignUp creates a customer account with a bcrypt password hash.
func (s *AuthServiceImpl) SignUp(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("validation: empty name/email/password")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn authenticates a user and mints the stateless session token. The
// purchasedComponents claim is a snapshot of SUCCESS single-component
// purchases taken here; it is never re-read from the token for authorization.
//
// last_login is stamped before the password check, so a failed attempt with a
// known email still moves the timestamp. Intentional behavior carried over;
// see the open-questions section of DESIGN.md.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password, ip string) (string, model.SessionClaims, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return "", model.SessionClaims{}, err
	}
	if !allowed {
		return "", model.SessionClaims{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return "", model.SessionClaims{}, errs.ErrRateLimited
		}
		if errors.Is(err, errs.ErrNotFound) {
			// hide account existence
			return "", model.SessionClaims{}, errs.ErrInvalidCredentials
		}
		return "", model.SessionClaims{}, err
	}

	_ = s.users.UpdateLastLogin(ctx, u.ID, time.Now())

	if !s.hasher.Verify(u.PasswordHash, password) {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return "", model.SessionClaims{}, errs.ErrRateLimited
		}
		return "", model.SessionClaims{}, errs.ErrInvalidCredentials
	}

	_ = s.lim.Success(ctx, email, ipHash)

	purchased, err := s.purchases.PurchasedComponentIDs(ctx, u.ID)
	if err != nil {
		return "", model.SessionClaims{}, err
	}

	claims := model.SessionClaims{
		UserID:              u.ID,
		Role:                u.Role,
		HasPurchased:        u.HasPurchased,
		PurchasedComponents: purchased,
	}
	signed, exp, err := s.tokens.Issue(claims)
	if err != nil {
		return "", model.SessionClaims{}, err
	}
	claims.ExpiresAt = exp
	return signed, claims, nil
}

// CurrentUser loads the live account row for the token subject.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
