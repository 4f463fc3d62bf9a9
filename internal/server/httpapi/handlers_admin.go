package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/infinityui/backend/internal/model"
	"github.com/infinityui/backend/internal/search"
)

// componentInput is the admin create/update request body.
type componentInput struct {
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Price       float64  `json:"price"`
	IsFree      bool     `json:"isFree"`
	IsFeatured  bool     `json:"isFeatured"`
	IsNew       bool     `json:"isNew"`
	IsAI        bool     `json:"isAI"`
	Visible     bool     `json:"visible"`

	Snippets []struct {
		FileName  string `json:"fileName"`
		Extension string `json:"extension"`
		Language  string `json:"language"`
		Code      string `json:"code"`
	} `json:"snippets"`
}

func (in componentInput) toModel() (*model.Component, error) {
	catID, err := uuid.FromString(in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid categoryId")
	}
	c := &model.Component{
		CategoryID:  catID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Keywords:    in.Keywords,
		Price:       in.Price,
		IsFree:      in.IsFree,
		IsFeatured:  in.IsFeatured,
		IsNew:       in.IsNew,
		IsAI:        in.IsAI,
		Visible:     in.Visible,
	}
	for _, sn := range in.Snippets {
		c.Snippets = append(c.Snippets, model.CodeSnippet{
			FileName:  sn.FileName,
			Extension: sn.Extension,
			Language:  sn.Language,
			Code:      sn.Code,
		})
	}
	return c, nil
}

func urlID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id")
	}
	return id, nil
}

// handleAdminListComponents is the exact-filter listing: a page, the filtered
// count and the unfiltered total.
func (s *Server) handleAdminListComponents(w http.ResponseWriter, r *http.Request) {
	f := search.AdminFilter{
		Term:         r.URL.Query().Get("search"),
		CategorySlug: r.URL.Query().Get("category"),
		IsFree:       boolParam(r, "isFree"),
		IsFeatured:   boolParam(r, "isFeatured"),
		IsNew:        boolParam(r, "isNew"),
		IsAI:         boolParam(r, "isAI"),
		Visible:      boolParam(r, "visible"),
		MinPrice:     floatParam(r, "minPrice"),
		MaxPrice:     floatParam(r, "maxPrice"),
		Limit:        intParam(r, "limit"),
		Skip:         intParam(r, "skip"),
	}

	items, filtered, total, err := s.admin.ListComponents(r.Context(), f)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"components":    toComponentListJSON(items),
		"filteredCount": filtered,
		"totalCount":    total,
	})
}

func (s *Server) handleAdminGetComponent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	c, err := s.admin.GetComponent(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toComponentJSON(c))
}

func (s *Server) handleAdminCreateComponent(w http.ResponseWriter, r *http.Request) {
	var in componentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondAction(w, fmt.Errorf("invalid request body"), "")
		return
	}
	c, err := in.toModel()
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	s.respondAction(w, s.admin.CreateComponent(r.Context(), c), "component created")
}

func (s *Server) handleAdminUpdateComponent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	var in componentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondAction(w, fmt.Errorf("invalid request body"), "")
		return
	}
	c, err := in.toModel()
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	c.ID = id
	s.respondAction(w, s.admin.UpdateComponent(r.Context(), c), "component updated")
}

func (s *Server) handleAdminDeleteComponent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	s.respondAction(w, s.admin.DeleteComponent(r.Context(), id), "component deleted")
}

func (s *Server) handleAdminListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.admin.ListCategories(r.Context())
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

type categoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (s *Server) handleAdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondAction(w, fmt.Errorf("invalid request body"), "")
		return
	}
	c := &model.Category{Name: in.Name, Slug: in.Slug, Description: in.Description}
	s.respondAction(w, s.admin.CreateCategory(r.Context(), c), "category created")
}

func (s *Server) handleAdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	var in categoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondAction(w, fmt.Errorf("invalid request body"), "")
		return
	}
	c := &model.Category{ID: id, Name: in.Name, Slug: in.Slug, Description: in.Description}
	s.respondAction(w, s.admin.UpdateCategory(r.Context(), c), "category updated")
}

func (s *Server) handleAdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	s.respondAction(w, s.admin.DeleteCategory(r.Context(), id), "category deleted")
}

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.admin.ListUsers(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	out := make([]userJSON, 0, len(users))
	for i := range users {
		out = append(out, toUserJSON(&users[i]))
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (s *Server) handleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	var in struct {
		Name         string `json:"name"`
		Role         string `json:"role"`
		Image        string `json:"image"`
		HasPurchased bool   `json:"hasPurchased"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondAction(w, fmt.Errorf("invalid request body"), "")
		return
	}
	u := &model.User{ID: id, Name: in.Name, Role: in.Role, Image: in.Image, HasPurchased: in.HasPurchased}
	s.respondAction(w, s.admin.UpdateUser(r.Context(), u), "user updated")
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		s.respondAction(w, err, "")
		return
	}
	s.respondAction(w, s.admin.DeleteUser(r.Context(), id), "user deleted")
}
