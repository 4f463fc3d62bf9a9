// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User roles. Only two exist; everything that is not an admin is a customer.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Purchase statuses as stored by the payment callback.
const (
	PurchaseStatusPending = "PENDING"
	PurchaseStatusSuccess = "SUCCESS"
	PurchaseStatusFailed  = "FAILED"
)

// Category groups catalog components; one-to-many with Component.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Component is a single catalog item. Keywords is an ordered list used both for
// exact keyword filtering and as fuzzy-match material in search.
type Component struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string // populated on reads that join categories
	Name         string
	Slug         string
	Description  string
	Keywords     []string
	Price        float64
	IsFree       bool
	IsFeatured   bool
	IsNew        bool
	IsAI         bool
	Visible      bool
	Views        int64
	CreatedAt    time.Time
	Snippets     []CodeSnippet // populated on detail reads only
}

// CodeSnippet is one source file attached to a component. Snippets are always
// replaced wholesale on component update, never patched individually.
type CodeSnippet struct {
	ID          uuid.UUID
	ComponentID uuid.UUID
	FileName    string
	Extension   string
	Language    string
	Code        string
}

// User represents an account. PasswordHash is a bcrypt hash (salt embedded).
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // unique
	PasswordHash string
	Role         string
	Image        string
	HasPurchased bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Purchase records a paid order. ComponentID is non-nil only when IsComponent
// is true; bundle and pack purchases reference no single component.
type Purchase struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ComponentID *uuid.UUID
	IsComponent bool
	IsBundle    bool
	IsPack      bool
	Status      string
	Amount      float64
	CreatedAt   time.Time
}

// SessionClaims is the decoded payload of a session token. PurchasedComponents
// is a snapshot of the user's SUCCESS single-component purchases taken at
// token-issue time; authoritative state is always re-queried from the database.
type SessionClaims struct {
	UserID              uuid.UUID
	Role                string
	HasPurchased        bool
	PurchasedComponents []string
	ExpiresAt           time.Time
}

// IsAdmin reports whether the session belongs to an admin user.
func (c *SessionClaims) IsAdmin() bool { return c.Role == RoleAdmin }
