package sql

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"

	defaultConnectionTimeout = 20 * time.Second
)

type Driver string

type Config struct {
	Driver            Driver
	DSN               string
	ConnectionTimeout time.Duration
}

type Client interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

type ClientTx interface {
	Client
	Commit() error
	Rollback() error
}

type TxClient interface {
	Client
	Begin(ctx context.Context) (ClientTx, error)
}

type Database interface {
	TxClient
	// Builder returns a squirrel builder with the placeholder format of the driver.
	Builder() sq.StatementBuilderType
	Close(ctx context.Context)
}

type database struct {
	*sqlx.DB
	builder sq.StatementBuilderType
	logger  log.Logger
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *database) Builder() sq.StatementBuilderType {
	return d.builder
}

func (d *database) Close(ctx context.Context) {
	err := d.DB.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func NewDatabase(ctx context.Context, config Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	builder, err := statementBuilder(config.Driver)
	if err != nil {
		return nil, err
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", config.Driver, err)
	}

	return &database{
		DB:      db,
		builder: builder,
		logger:  logger,
	}, nil
}

var registerSQLiteBindTypeOnce = &sync.Once{}

func statementBuilder(driver Driver) (sq.StatementBuilderType, error) {
	switch driver {
	case DriverSQLite:
		registerSQLiteBindTypeOnce.Do(func() {
			sqlx.BindDriver(string(DriverSQLite), sqlx.QUESTION)
		})
		return sq.StatementBuilder.PlaceholderFormat(sq.Question), nil
	case DriverPostgres:
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar), nil
	default:
		return sq.StatementBuilderType{}, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

func openConnection(ctx context.Context, config Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(string(config.Driver), config.DSN)
	if err != nil {
		return nil, err
	}

	// an in-memory sqlite database lives as long as its single connection
	if config.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
