// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/search"
)

// ComponentRepository provides catalog access for both the public search path
// and the admin listing path. The two listing methods are intentionally
// separate: Search is fuzzy and ranked, AdminList is exact and recency-ordered.
type ComponentRepository interface {
	// Search runs the ranked fuzzy query and the matching count query.
	Search(ctx context.Context, q search.Query) ([]model.Component, int64, error)

	// AdminList runs the exact-filter listing plus filtered and total counts.
	AdminList(ctx context.Context, f search.AdminFilter) (items []model.Component, filtered, total int64, err error)

	// GetBySlug loads a component with its snippets and increments its view counter.
	GetBySlug(ctx context.Context, slug string) (*model.Component, error)

	// GetByID loads a component with its snippets, without touching the counter.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Component, error)

	// Create inserts a component together with its snippets.
	Create(ctx context.Context, c *model.Component) error

	// Update rewrites the component row and replaces its snippets wholesale.
	Update(ctx context.Context, c *model.Component) error

	// Delete removes a component; snippets go with it via cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
