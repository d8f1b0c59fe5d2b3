package product

import (
	"context"

	"github.com/lucy1234dev/server/internal/pkg/pkgconfig"
	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
	"github.com/lucy1234dev/server/internal/product/inbound"
	"github.com/lucy1234dev/server/internal/product/store"
	"github.com/lucy1234dev/server/internal/product/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Router    *pkgrouter.Group
	ID        pkguid.StringID
	Validator *pkgvalidator.Validator
}

func New(dep Dependency) (func(context.Context) error, error) {
	var storage usecase.Store = store.NewInMemoryStore()
	if dep.Config.GetString("storage.driver") == "file" {
		storage = store.NewFileStore(dep.Config.GetString("storage.data_dir"))
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.Validator == nil {
		dep.Validator = pkgvalidator.New()
	}

	uc := usecase.New(usecase.Dependency{
		Store: storage,
		ID:    dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Validator)

	return nil, nil
}
