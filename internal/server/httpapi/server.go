// Package httpapi wires the HTTP surface: router, middleware, handlers and the
// route guard. Handlers never touch the database; they translate HTTP to
// service calls and map errors back.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/infinityui/backend/internal/service"
	"github.com/infinityui/backend/internal/token"
)

// Config holds transport-level settings.
type Config struct {
	// SecureCookies marks session cookies Secure; enabled in production.
	SecureCookies bool
}

// Server owns the router and its dependencies.
type Server struct {
	cfg     Config
	log     *zap.Logger
	auth    service.AuthService
	catalog service.CatalogService
	admin   service.AdminService
	tokens  *token.Manager
	router  chi.Router
}

// New constructs the server and mounts all routes.
func New(
	cfg Config,
	log *zap.Logger,
	auth service.AuthService,
	catalog service.CatalogService,
	admin service.AdminService,
	tokens *token.Manager,
) *Server {
	s := &Server{cfg: cfg, log: log, auth: auth, catalog: catalog, admin: admin, tokens: tokens}
	s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(Logging(s.log))
	r.Use(Recover(s.log))
	r.Use(s.session)
	// The guard redirects page navigation; API routes pass through it
	// unconditionally and carry their own checks.
	r.Use(s.guard)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/sign-up", s.handleSignUp)
		r.Post("/auth/sign-in", s.handleSignIn)
		r.Post("/auth/sign-out", s.handleSignOut)
		r.Get("/auth/me", s.handleMe)

		r.Get("/components", s.handleSearch)
		r.Get("/components/{slug}", s.handleGetComponent)
		r.Get("/categories", s.handleCategories)
		r.Get("/purchases", s.handleMyPurchases)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Get("/components", s.handleAdminListComponents)
			r.Get("/components/{id}", s.handleAdminGetComponent)
			r.Post("/components", s.handleAdminCreateComponent)
			r.Put("/components/{id}", s.handleAdminUpdateComponent)
			r.Delete("/components/{id}", s.handleAdminDeleteComponent)

			r.Get("/categories", s.handleAdminListCategories)
			r.Post("/categories", s.handleAdminCreateCategory)
			r.Put("/categories/{id}", s.handleAdminUpdateCategory)
			r.Delete("/categories/{id}", s.handleAdminDeleteCategory)

			r.Get("/users", s.handleAdminListUsers)
			r.Put("/users/{id}", s.handleAdminUpdateUser)
			r.Delete("/users/{id}", s.handleAdminDeleteUser)
		})
	})

	s.router = r
}
