// Package database centralises sqlx connection helpers.  The default driver
// is go-sql-driver/mysql, which also works with MariaDB and TiDB when
// configured for the MySQL wire protocol.
//
// Public entry points:
//
//	Open(ctx, dsn)                    – quick helper with conservative pool sizes.
//	OpenWithOptions(ctx, dsn, opts)   – fine-grained control plus ping retries.
//
// Both helpers Ping the database before returning so callers can fail fast
// during bootstrap.  Callers should Close() the returned *sqlx.DB when no
// longer needed.
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Options tunes the pool and the bootstrap ping.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Retries is the number of extra Ping attempts after the first failure.
	Retries      int
	RetryBackoff time.Duration
}

// DefaultOptions: 10 max open, 4 idle, 30-minute lifetime, two retries.  The
// reference tables are read a few times per TTL window, so the pool stays
// small.
var DefaultOptions = Options{
	MaxOpenConns:    10,
	MaxIdleConns:    4,
	ConnMaxLifetime: 30 * time.Minute,
	Retries:         2,
	RetryBackoff:    500 * time.Millisecond,
}

// Open returns a *sqlx.DB configured with DefaultOptions.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(ctx, dsn, DefaultOptions)
}

// OpenWithOptions opens a pool and pings it, retrying with linear backoff.
func OpenWithOptions(ctx context.Context, dsn string, opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err := ping(ctx, db, opts); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// pinger is the part of *sqlx.DB that ping needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

func ping(ctx context.Context, db pinger, opts Options) error {
	var err error
	for attempt := 0; attempt <= opts.Retries; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		zap.L().Warn("database ping failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		if attempt == opts.Retries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database: ping: %w", ctx.Err())
		case <-time.After(opts.RetryBackoff * time.Duration(attempt+1)):
		}
	}
	return fmt.Errorf("database: ping: %w", err)
}
