package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/repository"
	"github.com/infinityui/backend/internal/search"
)

// AdminService defines the admin dashboard operations. Listing is exact-match
// only; the fuzzy ranked path stays on CatalogService.
type AdminService interface {
	// ListComponents returns a filtered page, the filtered count and the
	// unfiltered total.
	ListComponents(ctx context.Context, f search.AdminFilter) ([]model.Component, int64, int64, error)
	// GetComponent loads one component with snippets, no view-counter side effect.
	GetComponent(ctx context.Context, id uuid.UUID) (*model.Component, error)
	// CreateComponent inserts a component and its snippets.
	CreateComponent(ctx context.Context, c *model.Component) error
	// UpdateComponent rewrites a component and replaces its snippets wholesale.
	UpdateComponent(ctx context.Context, c *model.Component) error
	// DeleteComponent removes a component; its snippets cascade.
	DeleteComponent(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type AdminServiceImpl struct {
	components repository.ComponentRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
}

// NewAdminService constructs AdminService.
func NewAdminService(
	components repository.ComponentRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
) *AdminServiceImpl {
	return &AdminServiceImpl{components: components, categories: categories, users: users}
}

// ListComponents normalizes paging and delegates.
func (s *AdminServiceImpl) ListComponents(ctx context.Context, f search.AdminFilter) ([]model.Component, int64, int64, error) {
	f.Limit, f.Skip = clampPage(f.Limit, f.Skip)
	return s.components.AdminList(ctx, f)
}

// GetComponent loads one component by ID.
func (s *AdminServiceImpl) GetComponent(ctx context.Context, id uuid.UUID) (*model.Component, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("validation: empty id")
	}
	return s.components.GetByID(ctx, id)
}

// validateComponent checks the fields every write needs.
func validateComponent(c *model.Component) error {
	if c.Name == "" || c.Slug == "" {
		return fmt.Errorf("validation: empty name/slug")
	}
	if c.CategoryID == uuid.Nil {
		return fmt.Errorf("validation: empty category")
	}
	if c.Price < 0 {
		return fmt.Errorf("validation: negative price")
	}
	for i := range c.Snippets {
		if c.Snippets[i].FileName == "" || c.Snippets[i].Code == "" {
			return fmt.Errorf("validation: snippet[%d] empty fileName/code", i)
		}
	}
	return nil
}

// assignSnippetIDs gives every snippet a fresh ID. Snippets are replaced
// wholesale on update, so old IDs never survive a write.
func assignSnippetIDs(c *model.Component) error {
	for i := range c.Snippets {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		c.Snippets[i].ID = id
		c.Snippets[i].ComponentID = c.ID
	}
	return nil
}

// CreateComponent validates input, assigns IDs and inserts.
func (s *AdminServiceImpl) CreateComponent(ctx context.Context, c *model.Component) error {
	if err := validateComponent(c); err != nil {
		return err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	c.ID = id
	if err := assignSnippetIDs(c); err != nil {
		return err
	}
	return s.components.Create(ctx, c)
}

// UpdateComponent validates input and rewrites the component with fresh snippets.
func (s *AdminServiceImpl) UpdateComponent(ctx context.Context, c *model.Component) error {
	if c.ID == uuid.Nil {
		return fmt.Errorf("validation: empty id")
	}
	if err := validateComponent(c); err != nil {
		return err
	}
	if err := assignSnippetIDs(c); err != nil {
		return err
	}
	return s.components.Update(ctx, c)
}

// DeleteComponent removes a component and, via cascade, its snippets.
func (s *AdminServiceImpl) DeleteComponent(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("validation: empty id")
	}
	return s.components.Delete(ctx, id)
}

// ListCategories lists all categories.
func (s *AdminServiceImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// CreateCategory validates and inserts a category.
func (s *AdminServiceImpl) CreateCategory(ctx context.Context, c *model.Category) error {
	if c.Name == "" || c.Slug == "" {
		return fmt.Errorf("validation: empty name/slug")
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	c.ID = id
	return s.categories.Create(ctx, c)
}

// UpdateCategory rewrites a category.
func (s *AdminServiceImpl) UpdateCategory(ctx context.Context, c *model.Category) error {
	if c.ID == uuid.Nil || c.Name == "" || c.Slug == "" {
		return fmt.Errorf("validation: empty id/name/slug")
	}
	return s.categories.Update(ctx, c)
}

// DeleteCategory removes a category; fails while components reference it.
func (s *AdminServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("validation: empty id")
	}
	return s.categories.Delete(ctx, id)
}

// ListUsers lists all accounts.
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateUser rewrites mutable account fields.
func (s *AdminServiceImpl) UpdateUser(ctx context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		return fmt.Errorf("validation: empty id")
	}
	if u.Role != model.RoleAdmin && u.Role != model.RoleUser {
		return fmt.Errorf("validation: unknown role %q", u.Role)
	}
	return s.users.Update(ctx, u)
}

// DeleteUser removes an account.
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("validation: empty id")
	}
	return s.users.Delete(ctx, id)
}
