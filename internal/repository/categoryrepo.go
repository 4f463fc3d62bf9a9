package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
)

// CategoryRepository provides category storage.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)
	// GetBySlug loads a category by its slug.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	// Create inserts a category; duplicate slug maps to errs.ErrAlreadyExists.
	Create(ctx context.Context, c *model.Category) error
	// Update rewrites name, slug and description.
	Update(ctx context.Context, c *model.Category) error
	// Delete removes a category. Fails while components still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
