package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lucy1234dev/server/internal/pkg/pkgconfig"
	"github.com/lucy1234dev/server/internal/pkg/pkghash"
	"github.com/lucy1234dev/server/internal/pkg/pkglog"
	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/pkg/pkgroutine"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
	"github.com/rs/cors"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(int(a.config.GetInt("goroutine.max")))
	a.uuid = pkguid.NewUUID()
	a.validator = pkgvalidator.New()
	a.hasher = pkghash.NewBcrypt(int(a.config.GetInt("modules.signup.bcrypt_cost")))
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	origins := []string{"*"}
	if a.config.GetString("server.cors.allowed_origins") != "" {
		origins = a.config.GetArray("server.cors.allowed_origins")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := a.config.GetString("server.address.http")
	if addr == "" {
		addr = ":8000"
	}

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
