package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/product"
	"github.com/lucy1234dev/server/internal/signup"
)

const (
	defaultSignupPrefix  = "/signup"
	defaultProductPrefix = "/product"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.signup.enabled") {
		closer, err := signup.New(signup.Dependency{
			Config:    a.config,
			Router:    a.mount("signup", defaultSignupPrefix),
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
			Hasher:    a.hasher,
			Validator: a.validator,
		})
		a.registerModule("Signup", closer, err)
	}

	if a.config.GetBool("modules.product.enabled") {
		closer, err := product.New(product.Dependency{
			Config:    a.config,
			Router:    a.mount("product", defaultProductPrefix),
			ID:        a.uuid,
			Validator: a.validator,
		})
		a.registerModule("Product", closer, err)
	}
}

// mount returns the route group for a module. A configured prefix of "/" or
// "" is rejected because it would place the module on the application root.
func (a *App) mount(name, fallback string) *pkgrouter.Group {
	prefix := a.config.GetString("modules." + name + ".prefix")
	if prefix == "" {
		prefix = fallback
	}

	group := a.router.Group(prefix)
	if group.Prefix() == "" {
		slog.Error("module prefix must not be the root path", "module", name, "prefix", prefix)
		os.Exit(1)
	}

	slog.Info("module mounted", "module", name, "prefix", group.Prefix())

	return group
}

func (a *App) registerModule(name string, closer func(context.Context) error, err error) {
	if err != nil {
		slog.Error("failed to init module", "module", name, "error", err)
		os.Exit(1)
	}
	if closer != nil {
		if a.closerFn == nil {
			a.closerFn = map[string]func(context.Context) error{}
		}
		a.closerFn[name] = closer
	}
}
