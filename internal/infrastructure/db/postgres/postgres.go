// Package postgres implements the entity store on PostgreSQL. Referential
// integrity and cascading deletes live in the schema (ON DELETE CASCADE),
// so a parent delete can never leave orphaned child rows.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
	"github.com/rs/zerolog"
)

// Config captures the settings required to establish a Postgres connection.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Open creates a connection pool. It does not verify connectivity; use
// WaitReady before accepting traffic.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return db, nil
}

// WaitReady pings the database up to attempts times with a fixed backoff
// between tries. It returns the last ping error when every attempt fails;
// callers treat that as fatal.
func WaitReady(ctx context.Context, db *sql.DB, attempts int, backoff time.Duration, log zerolog.Logger) error {
	var err error
	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Int("attempt", i).Int("max_attempts", attempts).Msg("database not ready")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", attempts, err)
}
