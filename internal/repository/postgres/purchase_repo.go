package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
)

// PurchaseRepo implements PurchaseRepository using PostgreSQL.
type PurchaseRepo struct{ db *DB }

// NewPurchaseRepo constructs a purchase repository.
func NewPurchaseRepo(db *DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

// Create inserts a purchase record.
func (r *PurchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	const q = `
INSERT INTO purchases (id, user_id, component_id, is_component, is_bundle, is_pack, status, amount)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.db.Pool.Exec(ctx, q,
		p.ID, p.UserID, p.ComponentID, p.IsComponent, p.IsBundle, p.IsPack, p.Status, p.Amount)
	return err
}

// ListByUser returns a user's purchases, newest first.
func (r *PurchaseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	const q = `
SELECT id, user_id, component_id, is_component, is_bundle, is_pack, status, amount, created_at
FROM purchases WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.ComponentID, &p.IsComponent,
			&p.IsBundle, &p.IsPack, &p.Status, &p.Amount, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PurchasedComponentIDs returns component IDs of SUCCESS single-component
// purchases, the snapshot embedded in session tokens.
func (r *PurchaseRepo) PurchasedComponentIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const q = `
SELECT component_id FROM purchases
WHERE user_id=$1 AND status=$2 AND is_component=TRUE AND component_id IS NOT NULL
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, userID, model.PurchaseStatusSuccess)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id.String())
	}
	return out, rows.Err()
}
