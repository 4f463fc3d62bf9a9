package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/infinityui/backend/internal/search"
)

// boolParam parses a tri-state query flag: absent means no filter.
func boolParam(r *http.Request, name string) *bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func intParam(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

func floatParam(r *http.Request, name string) *float64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// handleSearch is the public ranked search endpoint.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := search.Query{
		Term:         r.URL.Query().Get("search"),
		CategorySlug: r.URL.Query().Get("category"),
		Keyword:      r.URL.Query().Get("keyword"),
		IsFree:       boolParam(r, "isFree"),
		IsFeatured:   boolParam(r, "isFeatured"),
		Limit:        intParam(r, "limit"),
		Skip:         intParam(r, "skip"),
	}

	items, count, err := s.catalog.Search(r.Context(), q)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"components":      toComponentListJSON(items),
		"componentsCount": count,
	})
}

func (s *Server) handleGetComponent(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.GetComponent(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toComponentJSON(c))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	out := make([]categoryJSON, 0, len(cats))
	for i := range cats {
		out = append(out, toCategoryJSON(&cats[i]))
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"categories": out})
}

func (s *Server) handleMyPurchases(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		s.respondJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}
	ps, err := s.catalog.Purchases(r.Context(), claims.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	out := make([]purchaseJSON, 0, len(ps))
	for i := range ps {
		out = append(out, toPurchaseJSON(&ps[i]))
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"purchases": out})
}
