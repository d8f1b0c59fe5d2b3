package usecase

import (
	"context"
	"errors"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/product/entity"
)

type Store interface {
	Append(ctx context.Context, product entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
}

type Dependency struct {
	Store Store
	ID    pkguid.StringID
}

type Usecase struct {
	store Store
	id    pkguid.StringID
}

type CreateInput struct {
	Name       string
	Price      float64
	Categories string
	Page       string
	Image      string
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store: dep.Store,
		id:    dep.ID,
	}
}

// Create adds a product to the catalog with a freshly generated ID.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Product, error) {
	if u.store == nil || u.id == nil {
		return entity.Product{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if in.Price <= 0 {
		return entity.Product{}, pkgerror.NewBusiness("price must be greater than 0", pkgerror.CodeBadRequest)
	}

	product := entity.Product{
		ID:         u.id.Generate(),
		Name:       in.Name,
		Price:      in.Price,
		Categories: in.Categories,
		Page:       in.Page,
		Image:      in.Image,
	}

	if err := u.store.Append(ctx, product); err != nil {
		return entity.Product{}, pkgerror.NewServer(err)
	}

	return product, nil
}

// List returns the catalog in insertion order.
func (u *Usecase) List(ctx context.Context) ([]entity.Product, error) {
	products, err := u.store.List(ctx)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}
	return products, nil
}
