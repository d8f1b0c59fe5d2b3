package signup

import (
	"context"

	"github.com/lucy1234dev/server/internal/pkg/pkgconfig"
	"github.com/lucy1234dev/server/internal/pkg/pkghash"
	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/pkg/pkgroutine"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
	"github.com/lucy1234dev/server/internal/signup/inbound"
	"github.com/lucy1234dev/server/internal/signup/notify"
	"github.com/lucy1234dev/server/internal/signup/store"
	"github.com/lucy1234dev/server/internal/signup/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Group
	Context   context.Context
	ID        pkguid.StringID
	Hasher    pkghash.Hasher
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
	if dep.Hasher == nil {
		dep.Hasher = pkghash.NewBcrypt(int(dep.Config.GetInt("modules.signup.bcrypt_cost")))
	}
	if dep.Validator == nil {
		dep.Validator = pkgvalidator.New()
	}

	var runner usecase.Runner
	if dep.Goroutine != nil {
		runner = dep.Goroutine
	}

	uc := usecase.New(usecase.Dependency{
		Store:          storage,
		Sender:         notify.NewConsoleSender(nil),
		Runner:         runner,
		ID:             dep.ID,
		Codes:          pkguid.NewDigits(int(dep.Config.GetInt("modules.signup.otp_length"))),
		Hasher:         dep.Hasher,
		Validator:      dep.Validator,
		ResendCooldown: dep.Config.GetDuration("modules.signup.otp_resend_cooldown"),
		RootCtx:        dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Validator)

	return nil, nil
}
