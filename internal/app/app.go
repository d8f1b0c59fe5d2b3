package app

import (
	"context"
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgconfig"
	"github.com/lucy1234dev/server/internal/pkg/pkghash"
	"github.com/lucy1234dev/server/internal/pkg/pkglog"
	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/pkg/pkgroutine"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager
	validator *pkgvalidator.Validator
	hasher    pkghash.Hasher

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initRoutes()
	app.initModules()
	app.initClosers()

	return app
}
