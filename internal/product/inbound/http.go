package inbound

import (
	"context"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/product/entity"
	"github.com/lucy1234dev/server/internal/product/usecase"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
}

type validator interface {
	Validate(i any) error
}

func RegisterHTTPEndpoint(g *pkgrouter.Group, uc uc, v validator) {
	end := &HTTPEndpoint{uc: uc, validator: v}

	g.GET("/products", end.Products)
	g.POST("/product", end.AddProduct)
}
