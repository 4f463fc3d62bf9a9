// Package token issues and verifies stateless session credentials.
//
// The token is an HS256 JWT carrying the session claims snapshot. Verification
// is pure: any malformed, tampered or expired token maps to errs.ErrInvalidToken
// and is never surfaced as a panic or a transport error.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
)

// DefaultTTL is the session lifetime: 90 days.
const DefaultTTL = 90 * 24 * time.Hour

const issuer = "infinityui"

// Manager signs and verifies session tokens with a shared HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager. ttl <= 0 selects DefaultTTL.
func NewManager(secret []byte, ttl time.Duration) (*Manager, error) {
	if len(secret) < 16 {
		return nil, errors.New("token: signing secret must be at least 16 bytes")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: secret, ttl: ttl}, nil
}

// wireClaims is the JWT payload layout. The user ID travels in the standard
// "sub" claim; the rest are private claims.
type wireClaims struct {
	Role                string   `json:"role"`
	HasPurchased        bool     `json:"hasPurchased"`
	PurchasedComponents []string `json:"purchasedComponents"`
	jwt.RegisteredClaims
}

// Issue mints a signed token for the given session snapshot and returns the
// token string together with its expiry.
func (m *Manager) Issue(c model.SessionClaims) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	wc := wireClaims{
		Role:                c.Role,
		HasPurchased:        c.HasPurchased,
		PurchasedComponents: c.PurchasedComponents,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wc).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify parses and validates a token string. On success it returns the decoded
// session claims; on any failure it returns (nil, errs.ErrInvalidToken).
func (m *Manager) Verify(tokenStr string) (*model.SessionClaims, error) {
	var wc wireClaims
	tok, err := jwt.ParseWithClaims(
		tokenStr,
		&wc,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrInvalidToken
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, errs.ErrInvalidToken
	}
	userID, err := uuid.FromString(wc.Subject)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	return &model.SessionClaims{
		UserID:              userID,
		Role:                wc.Role,
		HasPurchased:        wc.HasPurchased,
		PurchasedComponents: wc.PurchasedComponents,
		ExpiresAt:           wc.ExpiresAt.Time,
	}, nil
}
