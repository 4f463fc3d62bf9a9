package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/search"
)

// ComponentRepo implements ComponentRepository using PostgreSQL.
type ComponentRepo struct{ db *DB }

// NewComponentRepo constructs a component repository.
func NewComponentRepo(db *DB) *ComponentRepo { return &ComponentRepo{db: db} }

// componentColumns matches the projection emitted by the search builders.
const componentColumns = `c.id, c.category_id, cat.name, c.name, c.slug, c.description,
c.keywords, c.price, c.is_free, c.is_featured, c.is_new, c.is_ai,
c.visible, c.views, c.created_at`

const snippetsBySelect = `
SELECT id, component_id, file_name, extension, language, code
FROM code_snippets WHERE component_id=$1 ORDER BY file_name ASC`

func scanComponent(row pgx.Row, c *model.Component, extra ...any) error {
	dest := []any{
		&c.ID, &c.CategoryID, &c.CategoryName, &c.Name, &c.Slug, &c.Description,
		&c.Keywords, &c.Price, &c.IsFree, &c.IsFeatured, &c.IsNew, &c.IsAI,
		&c.Visible, &c.Views, &c.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// Search runs the ranked query and its twin count query (two round trips; the
// WHERE fragment is shared by construction). Database errors propagate as-is.
func (r *ComponentRepo) Search(ctx context.Context, q search.Query) ([]model.Component, int64, error) {
	sel, countSQL, selArgs, countArgs := q.Build()

	var count int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Pool.Query(ctx, sel, selArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.Component
	for rows.Next() {
		var c model.Component
		var rank, sim float64
		if err := scanComponent(rows, &c, &rank, &sim); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, count, rows.Err()
}

// AdminList runs the exact-filter listing plus filtered and total counts
// (three separate queries, mirroring the admin dashboard contract).
func (r *ComponentRepo) AdminList(ctx context.Context, f search.AdminFilter) ([]model.Component, int64, int64, error) {
	sel, countSQL, selArgs, countArgs := f.Build()

	var filtered int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&filtered); err != nil {
		return nil, 0, 0, err
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, search.TotalSQL()).Scan(&total); err != nil {
		return nil, 0, 0, err
	}

	rows, err := r.db.Pool.Query(ctx, sel, selArgs...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var out []model.Component
	for rows.Next() {
		var c model.Component
		if err := scanComponent(rows, &c); err != nil {
			return nil, 0, 0, err
		}
		out = append(out, c)
	}
	return out, filtered, total, rows.Err()
}

// GetBySlug loads one component and bumps its view counter in the same statement.
func (r *ComponentRepo) GetBySlug(ctx context.Context, slug string) (*model.Component, error) {
	const q = `
UPDATE components c SET views = c.views + 1
FROM categories cat
WHERE cat.id = c.category_id AND c.slug=$1
RETURNING ` + componentColumns

	var c model.Component
	if err := scanComponent(r.db.Pool.QueryRow(ctx, q, slug), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadSnippets(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID loads one component without touching the view counter.
func (r *ComponentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Component, error) {
	const q = `
SELECT ` + componentColumns + `
FROM components c JOIN categories cat ON cat.id = c.category_id
WHERE c.id=$1`

	var c model.Component
	if err := scanComponent(r.db.Pool.QueryRow(ctx, q, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadSnippets(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComponentRepo) loadSnippets(ctx context.Context, c *model.Component) error {
	rows, err := r.db.Pool.Query(ctx, snippetsBySelect, c.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.CodeSnippet
		if err := rows.Scan(&s.ID, &s.ComponentID, &s.FileName, &s.Extension, &s.Language, &s.Code); err != nil {
			return err
		}
		c.Snippets = append(c.Snippets, s)
	}
	return rows.Err()
}

const insertSnippet = `
INSERT INTO code_snippets (id, component_id, file_name, extension, language, code)
VALUES ($1,$2,$3,$4,$5,$6)`

// Create inserts the component row and its snippets in one transaction.
func (r *ComponentRepo) Create(ctx context.Context, c *model.Component) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const ins = `
INSERT INTO components (id, category_id, name, slug, description, keywords,
price, is_free, is_featured, is_new, is_ai, visible)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	if _, err = tx.Exec(ctx, ins,
		c.ID, c.CategoryID, c.Name, c.Slug, c.Description, c.Keywords,
		c.Price, c.IsFree, c.IsFeatured, c.IsNew, c.IsAI, c.Visible,
	); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return err
	}
	for i := range c.Snippets {
		s := &c.Snippets[i]
		if _, err = tx.Exec(ctx, insertSnippet, s.ID, c.ID, s.FileName, s.Extension, s.Language, s.Code); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the component row and replaces its snippets wholesale
// (delete-all then re-insert; snippets are never patched incrementally).
func (r *ComponentRepo) Update(ctx context.Context, c *model.Component) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const upd = `
UPDATE components SET category_id=$2, name=$3, slug=$4, description=$5,
keywords=$6, price=$7, is_free=$8, is_featured=$9, is_new=$10, is_ai=$11, visible=$12
WHERE id=$1`
	tag, err := tx.Exec(ctx, upd,
		c.ID, c.CategoryID, c.Name, c.Slug, c.Description, c.Keywords,
		c.Price, c.IsFree, c.IsFeatured, c.IsNew, c.IsAI, c.Visible,
	)
	if err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}

	if _, err = tx.Exec(ctx, `DELETE FROM code_snippets WHERE component_id=$1`, c.ID); err != nil {
		return err
	}
	for i := range c.Snippets {
		s := &c.Snippets[i]
		if _, err = tx.Exec(ctx, insertSnippet, s.ID, c.ID, s.FileName, s.Extension, s.Language, s.Code); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the component; code_snippets rows go via ON DELETE CASCADE.
func (r *ComponentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM components WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
