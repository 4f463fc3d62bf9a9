package httpapi

import (
	"time"

	"github.com/infinityui/backend/internal/model"
)

// Wire shapes for the JSON API.

type componentJSON struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Price       float64   `json:"price"`
	IsFree      bool      `json:"isFree"`
	IsFeatured  bool      `json:"isFeatured"`
	IsNew       bool      `json:"isNew"`
	IsAI        bool      `json:"isAI"`
	Visible     bool      `json:"visible"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`

	Snippets []snippetJSON `json:"snippets,omitempty"`
}

type snippetJSON struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	Extension string `json:"extension"`
	Language  string `json:"language"`
	Code      string `json:"code"`
}

type categoryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type userJSON struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Image        string     `json:"image"`
	HasPurchased bool       `json:"hasPurchased"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type purchaseJSON struct {
	ID          string    `json:"id"`
	ComponentID *string   `json:"componentId"`
	IsComponent bool      `json:"isComponent"`
	IsBundle    bool      `json:"isBundle"`
	IsPack      bool      `json:"isPack"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toComponentJSON(c *model.Component) componentJSON {
	out := componentJSON{
		ID:          c.ID.String(),
		CategoryID:  c.CategoryID.String(),
		Category:    c.CategoryName,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Keywords:    c.Keywords,
		Price:       c.Price,
		IsFree:      c.IsFree,
		IsFeatured:  c.IsFeatured,
		IsNew:       c.IsNew,
		IsAI:        c.IsAI,
		Visible:     c.Visible,
		Views:       c.Views,
		CreatedAt:   c.CreatedAt,
	}
	for _, sn := range c.Snippets {
		out.Snippets = append(out.Snippets, snippetJSON{
			ID:        sn.ID.String(),
			FileName:  sn.FileName,
			Extension: sn.Extension,
			Language:  sn.Language,
			Code:      sn.Code,
		})
	}
	return out
}

func toComponentListJSON(cs []model.Component) []componentJSON {
	out := make([]componentJSON, 0, len(cs))
	for i := range cs {
		out = append(out, toComponentJSON(&cs[i]))
	}
	return out
}

func toCategoryJSON(c *model.Category) categoryJSON {
	return categoryJSON{ID: c.ID.String(), Name: c.Name, Slug: c.Slug, Description: c.Description}
}

func toUserJSON(u *model.User) userJSON {
	return userJSON{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Image:        u.Image,
		HasPurchased: u.HasPurchased,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}

func toPurchaseJSON(p *model.Purchase) purchaseJSON {
	out := purchaseJSON{
		ID:          p.ID.String(),
		IsComponent: p.IsComponent,
		IsBundle:    p.IsBundle,
		IsPack:      p.IsPack,
		Status:      p.Status,
		Amount:      p.Amount,
		CreatedAt:   p.CreatedAt,
	}
	if p.ComponentID != nil {
		id := p.ComponentID.String()
		out.ComponentID = &id
	}
	return out
}
