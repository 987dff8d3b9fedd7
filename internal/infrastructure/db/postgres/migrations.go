package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Migration is a single versioned schema change.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Migrations returns the full ordered schema history.
func Migrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create users table",
			SQL: `
				CREATE TABLE IF NOT EXISTS users (
					id BIGSERIAL PRIMARY KEY,
					username VARCHAR(80) NOT NULL UNIQUE,
					email VARCHAR(120) NOT NULL UNIQUE,
					password_hash VARCHAR(255) NOT NULL,
					role VARCHAR(20) NOT NULL DEFAULT 'general',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`,
		},
		{
			Version:     2,
			Description: "Create cases table",
			SQL: `
				CREATE TABLE IF NOT EXISTS cases (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					status VARCHAR(20) NOT NULL DEFAULT 'open',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`,
		},
		{
			Version:     3,
			Description: "Create customers table",
			SQL: `
				CREATE TABLE IF NOT EXISTS customers (
					id BIGSERIAL PRIMARY KEY,
					case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
					name VARCHAR(100) NOT NULL,
					email VARCHAR(120) NOT NULL DEFAULT '',
					phone VARCHAR(50) NOT NULL DEFAULT '',
					address TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);

				CREATE INDEX idx_customers_case_id ON customers(case_id);
			`,
		},
		{
			Version:     4,
			Description: "Create investigations table",
			SQL: `
				CREATE TABLE IF NOT EXISTS investigations (
					id BIGSERIAL PRIMARY KEY,
					case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
					title VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					status VARCHAR(20) NOT NULL DEFAULT 'open',
					start_date DATE,
					end_date DATE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);

				CREATE INDEX idx_investigations_case_id ON investigations(case_id);
			`,
		},
		{
			Version:     5,
			Description: "Create targets table",
			SQL: `
				CREATE TABLE IF NOT EXISTS targets (
					id BIGSERIAL PRIMARY KEY,
					investigation_id BIGINT NOT NULL REFERENCES investigations(id) ON DELETE CASCADE,
					name VARCHAR(100) NOT NULL,
					type VARCHAR(50) NOT NULL DEFAULT '',
					details TEXT NOT NULL DEFAULT '',
					status VARCHAR(20) NOT NULL DEFAULT 'open',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);

				CREATE INDEX idx_targets_investigation_id ON targets(investigation_id);
			`,
		},
	}
}

// Migrate applies all pending migrations, tracking progress in the
// schema_migrations table. Each migration runs in its own transaction.
func Migrate(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range Migrations() {
		var applied bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if applied {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
		log.Info().Int("version", m.Version).Str("description", m.Description).Msg("migration applied")
	}
	return nil
}
