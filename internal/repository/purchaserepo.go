package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
)

// PurchaseRepository provides order storage.
type PurchaseRepository interface {
	// Create inserts a purchase record.
	Create(ctx context.Context, p *model.Purchase) error
	// ListByUser returns a user's purchases, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error)
	// PurchasedComponentIDs returns the component IDs from the user's
	// SUCCESS-status single-component purchases. This is the snapshot embedded
	// in session tokens at issue time.
	PurchasedComponentIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}
