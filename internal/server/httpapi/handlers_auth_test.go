package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
)

func postJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleSignIn_Success(t *testing.T) {
	f := newTestServer(t)
	userID := uuid.Must(uuid.NewV4())
	signed := issueToken(t, f.tokens, userID, model.RoleUser)
	claims, err := f.tokens.Verify(signed)
	require.NoError(t, err)
	f.auth.signInSigned = signed
	f.auth.signInClaims = *claims

	rec := postJSON(t, f.srv, "/api/auth/sign-in", `{"email":"User@Example.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/dashboard", resp["callbackUrl"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, signed, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Positive(t, c.MaxAge)
}

func TestHandleSignIn_CallbackURLPassthrough(t *testing.T) {
	f := newTestServer(t)
	signed := issueToken(t, f.tokens, uuid.Must(uuid.NewV4()), model.RoleUser)
	claims, err := f.tokens.Verify(signed)
	require.NoError(t, err)
	f.auth.signInSigned = signed
	f.auth.signInClaims = *claims

	rec := postJSON(t, f.srv, "/api/auth/sign-in",
		`{"email":"u@e.com","password":"pw","callbackUrl":"/components/button"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/components/button", resp["callbackUrl"])
}

func TestHandleSignIn_AdminDefaultCallback(t *testing.T) {
	f := newTestServer(t)
	signed := issueToken(t, f.tokens, uuid.Must(uuid.NewV4()), model.RoleAdmin)
	claims, err := f.tokens.Verify(signed)
	require.NoError(t, err)
	f.auth.signInSigned = signed
	f.auth.signInClaims = *claims

	rec := postJSON(t, f.srv, "/api/auth/sign-in", `{"email":"a@e.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/admin", resp["callbackUrl"])
}

func TestHandleSignIn_BadCredentialsIsPlainText400(t *testing.T) {
	f := newTestServer(t)
	f.auth.signInErr = errs.ErrInvalidCredentials

	rec := postJSON(t, f.srv, "/api/auth/sign-in", `{"email":"u@e.com","password":"wrong"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "invalid email or password\n", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandleSignIn_RateLimited(t *testing.T) {
	f := newTestServer(t)
	f.auth.signInErr = errs.ErrRateLimited

	rec := postJSON(t, f.srv, "/api/auth/sign-in", `{"email":"u@e.com","password":"pw"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHandleSignUp(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newTestServer(t)
		f.auth.signUpUser = &model.User{
			ID:    uuid.Must(uuid.NewV4()),
			Name:  "New User",
			Email: "new@example.com",
			Role:  model.RoleUser,
		}

		rec := postJSON(t, f.srv, "/api/auth/sign-up",
			`{"name":"New User","email":"new@example.com","password":"pw"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp userJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "new@example.com", resp.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newTestServer(t)
		f.auth.signUpErr = errs.ErrAlreadyExists

		rec := postJSON(t, f.srv, "/api/auth/sign-up",
			`{"name":"New User","email":"new@example.com","password":"pw"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleSignOut(t *testing.T) {
	f := newTestServer(t)

	rec := postJSON(t, f.srv, "/api/auth/sign-out", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandleMe(t *testing.T) {
	f := newTestServer(t)
	userID := uuid.Must(uuid.NewV4())
	f.auth.currentUser = &model.User{ID: userID, Email: "u@e.com", Role: model.RoleUser}

	t.Run("authenticated", func(t *testing.T) {
		signed := issueToken(t, f.tokens, userID, model.RoleUser)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
		rec := httptest.NewRecorder()
		f.srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp userJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp.ID)
	})

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		f.srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
