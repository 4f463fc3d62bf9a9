package token

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager([]byte(testSecret), 0)
	require.NoError(t, err)
	return m
}

func TestNewManagerRejectsShortSecret(t *testing.T) {
	_, err := NewManager([]byte("short"), 0)
	require.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := newManager(t)
	in := model.SessionClaims{
		UserID:              uuid.Must(uuid.NewV4()),
		Role:                model.RoleAdmin,
		HasPurchased:        true,
		PurchasedComponents: []string{"a", "b"},
	}

	signed, exp, err := m.Issue(in)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(DefaultTTL), exp, time.Minute)

	out, err := m.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, in.UserID, out.UserID)
	require.Equal(t, in.Role, out.Role)
	require.Equal(t, in.HasPurchased, out.HasPurchased)
	require.Equal(t, in.PurchasedComponents, out.PurchasedComponents)
	require.WithinDuration(t, exp, out.ExpiresAt, time.Second)
}

func TestVerifyTamperedToken(t *testing.T) {
	m := newManager(t)
	signed, _, err := m.Issue(model.SessionClaims{UserID: uuid.Must(uuid.NewV4()), Role: model.RoleUser})
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	c, err := m.Verify(tampered)
	require.Nil(t, c)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	m := newManager(t)
	other, err := NewManager([]byte("ffffffffffffffffffffffffffffffff"), 0)
	require.NoError(t, err)

	signed, _, err := other.Issue(model.SessionClaims{UserID: uuid.Must(uuid.NewV4())})
	require.NoError(t, err)

	c, err := m.Verify(signed)
	require.Nil(t, c)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := newManager(t)
	now := time.Now()
	wc := wireClaims{
		Role: model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.Must(uuid.NewV4()).String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wc).SignedString([]byte(testSecret))
	require.NoError(t, err)

	c, err := m.Verify(signed)
	require.Nil(t, c)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := newManager(t)
	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		c, err := m.Verify(tok)
		require.Nil(t, c, tok)
		require.ErrorIs(t, err, errs.ErrInvalidToken, tok)
	}
}
