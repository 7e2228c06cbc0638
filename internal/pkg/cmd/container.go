package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	internalhttp "github.com/stafftools/staff-service/internal/pkg/http"
	"github.com/stafftools/staff-service/pkg/cmd"
	"github.com/stafftools/staff-service/pkg/env"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
	"github.com/stafftools/staff-service/pkg/lazy"
	"github.com/stafftools/staff-service/pkg/log"
	"github.com/stafftools/staff-service/pkg/metric"
	"github.com/stafftools/staff-service/pkg/observability"
	pkgsql "github.com/stafftools/staff-service/pkg/sql"
	pkgtime "github.com/stafftools/staff-service/pkg/time"
)

const metricsPath = "/metrics"

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[pkghttp.Server]
	HTTPClientFactory lazy.Loader[internalhttp.ClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[pkgsql.Database]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
	Clock             lazy.Loader[pkgtime.Clock]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	metrics, metricsHandler := metricsProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(metricsHandler, observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      dbMigrations,
		DB:                db,
		Metrics:           metrics,
		Logger:            logger,
		Clock:             clockProvider(),
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db pkgsql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func metricsProvider() (lazy.Loader[metric.Metrics], lazy.Loader[http.Handler]) {
	impl := lazy.New(func() (struct {
		Metrics metric.Metrics
		Handler http.Handler
	}, error,
	) {
		enabled, err := env.ParseOptional[bool]("METRICS_ENABLED")
		if err != nil {
			return struct {
				Metrics metric.Metrics
				Handler http.Handler
			}{}, err
		}
		if enabled != nil && !*enabled {
			return struct {
				Metrics metric.Metrics
				Handler http.Handler
			}{metric.NewMetricsStub(), http.NotFoundHandler()}, nil
		}

		metrics, handler := metric.NewPrometheusMetrics()
		return struct {
			Metrics metric.Metrics
			Handler http.Handler
		}{metrics, handler}, nil
	})

	metrics := lazy.New(func() (metric.Metrics, error) {
		loaded, err := impl.Load()
		return loaded.Metrics, err
	})
	handler := lazy.New(func() (http.Handler, error) {
		loaded, err := impl.Load()
		return loaded.Handler, err
	})

	return metrics, handler
}

func observerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.FieldRequestID),
		), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func sqlDatabaseProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pkgsql.Database] {
	return lazy.New(func() (pkgsql.Database, error) {
		sqlConfig := &pkgsql.Config{
			DSN: pkgsql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := pkgsql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("open sql connection: %w", err)
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[pkgsql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	metricsHandler lazy.Loader[http.Handler],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		address := env.Must(env.ParseOptional[string]("SERVICE_ADDRESS"))
		if address == nil {
			defaultAddress := pkghttp.DefaultServerAddress
			address = &defaultAddress
		}

		return pkghttp.NewServer(
			*address,
			pkghttp.WithHealthCheck(nil),
			pkghttp.WithMetricsEndpoint(metricsPath, metricsHandler.MustLoad()),
			pkghttp.WithObservability(observer.MustLoad(), pkghttp.ObservabilityFieldExtractors{
				observability.FieldRequestID: {
					pkghttp.ObservabilityFieldHeaderExtractor(pkghttp.DefaultRequestIDHeader),
					pkghttp.ObservabilityFieldRandomUUIDExtractor(),
				},
			}),
			pkghttp.WithMetrics(metrics.MustLoad()),
			pkghttp.WithLogging(logger.MustLoad(), metricsPath),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[internalhttp.ClientFactory] {
	return lazy.New(func() (internalhttp.ClientFactory, error) {
		return internalhttp.NewClientFactory(
			pkghttp.WithRequestObservability(observer.MustLoad(), pkghttp.DefaultRequestIDHeader),
			pkghttp.WithRequestMetrics(metrics.MustLoad()),
			pkghttp.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
