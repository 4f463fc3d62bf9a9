package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
)

// UserRepository provides account storage.
type UserRepository interface {
	// Create inserts a new user; duplicate email maps to errs.ErrAlreadyExists.
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by unique email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// UpdateLastLogin stamps the last sign-in attempt time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)
	// Update rewrites mutable account fields (name, role, image, hasPurchased).
	Update(ctx context.Context, u *model.User) error
	// Delete removes a user account.
	Delete(ctx context.Context, id uuid.UUID) error
}
