package main

import (
	"context"

	"github.com/klwxsrx/repertoire-hero/internal/library"
	"github.com/klwxsrx/repertoire-hero/internal/pkg/cmd"
	"github.com/klwxsrx/repertoire-hero/internal/session"
	pkgcmd "github.com/klwxsrx/repertoire-hero/pkg/cmd"
	"github.com/klwxsrx/repertoire-hero/pkg/env"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger, infra.Close)

	sessionContainer := session.NewDependencyContainer(
		session.Config{
			SecureCookie: env.Must(env.ParseWithDefault("SESSION_COOKIE_SECURE", false)),
		},
		infra.Clock,
		infra.Metrics,
		infra.Logger,
	)
	libraryContainer := library.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
	)

	httpServer := infra.HTTPServer.MustLoad()
	sessionContainer.MustRegisterHTTPHandlers(httpServer)
	libraryContainer.MustRegisterHTTPHandlers(httpServer, sessionContainer.MustGateOption())

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
