package main

import (
	"context"

	"github.com/stafftools/staff-service/internal/orgchart"
	"github.com/stafftools/staff-service/internal/pkg/cmd"
	pkgcmd "github.com/stafftools/staff-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	container := orgchart.NewDependencyContainer(infra.HTTPClientFactory)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
