package httpapi

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/search"
	"github.com/infinityui/backend/internal/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// stubAuth returns canned results; fields record the last call's inputs.
type stubAuth struct {
	signInSigned string
	signInClaims model.SessionClaims
	signInErr    error
	signInEmail  string

	signUpUser *model.User
	signUpErr  error

	currentUser *model.User
	currentErr  error
}

func (a *stubAuth) SignUp(_ context.Context, name, email, password string) (*model.User, error) {
	return a.signUpUser, a.signUpErr
}

func (a *stubAuth) SignIn(_ context.Context, email, password, ip string) (string, model.SessionClaims, error) {
	a.signInEmail = email
	return a.signInSigned, a.signInClaims, a.signInErr
}

func (a *stubAuth) CurrentUser(_ context.Context, userID uuid.UUID) (*model.User, error) {
	return a.currentUser, a.currentErr
}

type stubCatalog struct {
	components []model.Component
	count      int64
	component  *model.Component
	categories []model.Category
	purchases  []model.Purchase
	err        error

	lastQuery search.Query
}

func (c *stubCatalog) Search(_ context.Context, q search.Query) ([]model.Component, int64, error) {
	c.lastQuery = q
	return c.components, c.count, c.err
}

func (c *stubCatalog) GetComponent(_ context.Context, slug string) (*model.Component, error) {
	return c.component, c.err
}

func (c *stubCatalog) Categories(_ context.Context) ([]model.Category, error) {
	return c.categories, c.err
}

func (c *stubCatalog) Purchases(_ context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	return c.purchases, c.err
}

type stubAdmin struct {
	components []model.Component
	filtered   int64
	total      int64
	component  *model.Component
	categories []model.Category
	users      []model.User
	err        error

	lastFilter    search.AdminFilter
	lastComponent *model.Component
	lastCategory  *model.Category
	lastUser      *model.User
	lastDeleted   uuid.UUID
}

func (a *stubAdmin) ListComponents(_ context.Context, f search.AdminFilter) ([]model.Component, int64, int64, error) {
	a.lastFilter = f
	return a.components, a.filtered, a.total, a.err
}

func (a *stubAdmin) GetComponent(_ context.Context, id uuid.UUID) (*model.Component, error) {
	return a.component, a.err
}

func (a *stubAdmin) CreateComponent(_ context.Context, c *model.Component) error {
	a.lastComponent = c
	return a.err
}

func (a *stubAdmin) UpdateComponent(_ context.Context, c *model.Component) error {
	a.lastComponent = c
	return a.err
}

func (a *stubAdmin) DeleteComponent(_ context.Context, id uuid.UUID) error {
	a.lastDeleted = id
	return a.err
}

func (a *stubAdmin) ListCategories(_ context.Context) ([]model.Category, error) {
	return a.categories, a.err
}

func (a *stubAdmin) CreateCategory(_ context.Context, c *model.Category) error {
	a.lastCategory = c
	return a.err
}

func (a *stubAdmin) UpdateCategory(_ context.Context, c *model.Category) error {
	a.lastCategory = c
	return a.err
}

func (a *stubAdmin) DeleteCategory(_ context.Context, id uuid.UUID) error {
	a.lastDeleted = id
	return a.err
}

func (a *stubAdmin) ListUsers(_ context.Context) ([]model.User, error) {
	return a.users, a.err
}

func (a *stubAdmin) UpdateUser(_ context.Context, u *model.User) error {
	a.lastUser = u
	return a.err
}

func (a *stubAdmin) DeleteUser(_ context.Context, id uuid.UUID) error {
	a.lastDeleted = id
	return a.err
}

type testFixture struct {
	srv     *Server
	tokens  *token.Manager
	auth    *stubAuth
	catalog *stubCatalog
	admin   *stubAdmin
}

func newTestServer(t *testing.T) *testFixture {
	t.Helper()

	tm, err := token.NewManager([]byte(testSecret), 0)
	require.NoError(t, err)

	f := &testFixture{
		tokens:  tm,
		auth:    &stubAuth{},
		catalog: &stubCatalog{},
		admin:   &stubAdmin{},
	}
	f.srv = New(Config{}, zap.NewNop(), f.auth, f.catalog, f.admin, tm)
	return f
}

// issueToken mints a real signed token for request fixtures.
func issueToken(t *testing.T, tm *token.Manager, userID uuid.UUID, role string) string {
	t.Helper()
	signed, _, err := tm.Issue(model.SessionClaims{UserID: userID, Role: role})
	require.NoError(t, err)
	return signed
}
