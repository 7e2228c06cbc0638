package main

import (
	"context"
	"time"

	"github.com/stafftools/staff-service/internal/pkg/cmd"
	"github.com/stafftools/staff-service/internal/staff"
	pkgcmd "github.com/stafftools/staff-service/pkg/cmd"
	"github.com/stafftools/staff-service/pkg/worker"
)

const purgeFiredEmployeesInterval = time.Hour

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	container := staff.NewDependencyContainer(
		infra.Clock,
		infra.DB,
		infra.DBMigrations,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		worker.PeriodicalJob(container.PurgeFiredEmployeesJob(), purgeFiredEmployeesInterval, logger),
	)
}
