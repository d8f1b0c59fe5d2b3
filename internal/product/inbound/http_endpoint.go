package inbound

import (
	"context"
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/product/usecase"
)

type HTTPEndpoint struct {
	uc        uc
	validator validator
}

func (h *HTTPEndpoint) Products(ctx context.Context, _ *http.Request) (any, error) {
	products, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make(ProductList, 0, len(products))
	for _, p := range products {
		list = append(list, toHTTPProduct(p))
	}

	return list, nil
}

func (h *HTTPEndpoint) AddProduct(ctx context.Context, r *http.Request) (any, error) {
	var req CreateProductRequest
	if err := pkgrouter.BindJSON(r, &req); err != nil {
		return nil, err
	}
	if h.validator != nil {
		if err := h.validator.Validate(&req); err != nil {
			return nil, err
		}
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	product, err := h.uc.Create(ctx, usecase.CreateInput{
		Name:       req.Name,
		Price:      price,
		Categories: req.Categories,
		Page:       req.Page,
		Image:      req.Image,
	})
	if err != nil {
		return nil, err
	}

	return toHTTPProduct(product), nil
}
