package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-portal/pkg/logger"
)

// Options tunes the pool. Zero values fall back to the defaults below.
type Options struct {
	// SimpleProtocol avoids server side prepared statements, required when
	// running behind PgBouncer in transaction mode.
	SimpleProtocol bool
	MaxConns       int32
}

const (
	defaultMaxConns    = 25
	defaultMinConns    = 5
	defaultMaxLifetime = time.Hour
	defaultMaxIdleTime = 30 * time.Minute
)

func poolConfig(connString string, opts Options) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	if opts.SimpleProtocol {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	config.MaxConns = defaultMaxConns
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	config.MinConns = defaultMinConns
	if config.MinConns > config.MaxConns {
		config.MinConns = config.MaxConns
	}
	config.MaxConnLifetime = defaultMaxLifetime
	config.MaxConnIdleTime = defaultMaxIdleTime

	return config, nil
}

func NewPostgresConnection(ctx context.Context, connString string, opts Options) (*pgxpool.Pool, error) {
	config, err := poolConfig(connString, opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established", "max_conns", config.MaxConns)
	return pool, nil
}
