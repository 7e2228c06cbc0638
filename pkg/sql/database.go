package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/stafftools/staff-service/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type Config struct {
	DSN                DSN
	ConnectionTimeout  time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

type DSN struct {
	User     string
	Password string
	Address  string
	Database string
}

func (d DSN) String() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=disable", d.User, d.Password, d.Address, d.Database)
}

type database struct {
	db     *sqlx.DB
	logger log.Logger
}

func NewDatabase(config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	db, err := openConnection(config)
	if err != nil {
		return nil, err
	}

	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}
	if config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(config.MaxIdleConnections)
	}

	return &database{db: db, logger: logger}, nil
}

func (c *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *database) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return c.db.NamedExecContext(ctx, query, arg)
}

func (c *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.db.GetContext(ctx, dest, query, args...)
}

func (c *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.db.SelectContext(ctx, dest, query, args...)
}

func (c *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (c *database) Close(ctx context.Context) {
	err := c.db.Close()
	if err != nil {
		c.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func openConnection(config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", config.DSN.String())
	if err != nil {
		return nil, err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(db.Ping, eb)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sql connection: %w", err)
	}

	return db, nil
}
