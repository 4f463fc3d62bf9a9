package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/repository"
	"github.com/infinityui/backend/internal/search"
)

// Paging defaults for the public catalog.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CatalogService defines the public, read-mostly catalog operations.
type CatalogService interface {
	// Search runs the ranked fuzzy search and returns a page plus total count.
	Search(ctx context.Context, q search.Query) ([]model.Component, int64, error)
	// GetComponent loads one component by slug and bumps its view counter.
	GetComponent(ctx context.Context, slug string) (*model.Component, error)
	// Categories lists all categories.
	Categories(ctx context.Context) ([]model.Category, error)
	// Purchases lists a user's orders for the dashboard.
	Purchases(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error)
}

type CatalogServiceImpl struct {
	components repository.ComponentRepository
	categories repository.CategoryRepository
	purchases  repository.PurchaseRepository
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(
	components repository.ComponentRepository,
	categories repository.CategoryRepository,
	purchases repository.PurchaseRepository,
) *CatalogServiceImpl {
	return &CatalogServiceImpl{components: components, categories: categories, purchases: purchases}
}

// clampPage normalizes limit/skip to sane bounds.
func clampPage(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

// Search normalizes paging and delegates to the repository. A query with no
// matches yields an empty page and count 0, not an error.
func (s *CatalogServiceImpl) Search(ctx context.Context, q search.Query) ([]model.Component, int64, error) {
	q.Limit, q.Skip = clampPage(q.Limit, q.Skip)
	return s.components.Search(ctx, q)
}

// GetComponent loads one component by slug.
func (s *CatalogServiceImpl) GetComponent(ctx context.Context, slug string) (*model.Component, error) {
	return s.components.GetBySlug(ctx, slug)
}

// Categories lists all categories ordered by name.
func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// Purchases lists the user's orders, newest first.
func (s *CatalogServiceImpl) Purchases(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	return s.purchases.ListByUser(ctx, userID)
}
