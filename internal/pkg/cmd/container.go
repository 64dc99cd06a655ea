package cmd

import (
	"context"
	"fmt"
	"time"

	commonhttp "github.com/klwxsrx/repertoire-hero/internal/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/env"
	"github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/lazy"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
	"github.com/klwxsrx/repertoire-hero/pkg/observability"
	"github.com/klwxsrx/repertoire-hero/pkg/sql"
	pkgtime "github.com/klwxsrx/repertoire-hero/pkg/time"
)

const (
	defaultSQLDriver = sql.DriverSQLite
	defaultSQLDSN    = "file:repertoire-hero.db?_pragma=foreign_keys(1)"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Clock             lazy.Loader[pkgtime.Clock]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	err := env.LoadFiles()
	if err != nil {
		panic(err)
	}

	prometheusMetrics := prometheusMetricsProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheusMetrics.MustLoad(), nil })
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, prometheusMetrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Clock:             clockProvider(),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusMetricsProvider() lazy.Loader[metric.PrometheusMetrics] {
	return lazy.New(func() (metric.PrometheusMetrics, error) {
		return metric.NewPrometheusMetrics(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewClock(), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := sql.Config{
			Driver: sql.Driver(env.Must(env.ParseWithDefault("SQL_DRIVER", string(defaultSQLDriver)))),
			DSN:    env.Must(env.ParseWithDefault("SQL_DSN", defaultSQLDSN)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress))

		return http.NewServer(
			address,
			http.WithHealthCheck(),
			http.WithMetricsHandler(metrics.MustLoad().Handler()),
			http.WithMethodNotAllowedHandler(),
			http.WithObservability(
				observer.MustLoad(),
				commonhttp.RequestIDHeader,
				http.RequestIDHeaderExtractor(commonhttp.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
