package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
)

// CategoryRepo implements CategoryRepository using PostgreSQL.
type CategoryRepo struct{ db *DB }

// NewCategoryRepo constructs a category repository.
func NewCategoryRepo(db *DB) *CategoryRepo { return &CategoryRepo{db: db} }

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetBySlug selects a category by slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	const q = `SELECT id, name, slug, description, created_at FROM categories WHERE slug=$1`
	var c model.Category
	err := r.db.Pool.QueryRow(ctx, q, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category row.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	const q = `INSERT INTO categories (id, name, slug, description) VALUES ($1,$2,$3,$4)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Slug, c.Description)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Update rewrites name, slug and description.
func (r *CategoryRepo) Update(ctx context.Context, c *model.Category) error {
	const q = `UPDATE categories SET name=$2, slug=$3, description=$4 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Slug, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a category. Components keep a RESTRICT foreign key, so a
// populated category cannot be deleted.
func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
