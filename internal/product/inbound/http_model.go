package inbound

import "github.com/lucy1234dev/server/internal/product/entity"

// CreateProductRequest uses a pointer price so a missing price is a
// validation error while an explicit zero reaches the price rule.
type CreateProductRequest struct {
	Name       string   `json:"name" validate:"required"`
	Price      *float64 `json:"price" validate:"required"`
	Categories string   `json:"categories" validate:"required"`
	Page       string   `json:"page" validate:"required"`
	Image      string   `json:"image" validate:"required"`
}

type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Categories string  `json:"categories"`
	Page       string  `json:"page"`
	Image      string  `json:"image"`
}

func (Product) Message() string {
	return "product added"
}

type ProductList []Product

func (l ProductList) Meta() map[string]any {
	return map[string]any{"total": len(l)}
}

func toHTTPProduct(p entity.Product) Product {
	return Product{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Categories: p.Categories,
		Page:       p.Page,
		Image:      p.Image,
	}
}
