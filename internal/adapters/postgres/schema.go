package postgres_adapter

import (
	"context"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/port"
)

// schemaStatements create every table idempotently. There is no migration
// version tracking beyond this; the statements are safe to re-run on every
// boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS governorates (
		id SERIAL PRIMARY KEY,
		name_ar TEXT NOT NULL,
		name_en TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS directorates (
		id SERIAL PRIMARY KEY,
		governorate_id INTEGER NOT NULL REFERENCES governorates(id) ON DELETE CASCADE,
		name_ar TEXT NOT NULL,
		name_en TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS property_types (
		id SERIAL PRIMARY KEY,
		name_ar TEXT NOT NULL,
		name_en TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		size INTEGER NOT NULL CHECK (size >= 0),
		bedrooms INTEGER NOT NULL DEFAULT 0,
		bathrooms INTEGER NOT NULL DEFAULT 0,
		property_type TEXT NOT NULL,
		governorate_id INTEGER REFERENCES governorates(id) ON DELETE SET NULL,
		directorate_id INTEGER REFERENCES directorates(id) ON DELETE SET NULL,
		village TEXT NOT NULL DEFAULT '',
		basin TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		plot_number TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		images TEXT[] NOT NULL DEFAULT '{}',
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS newsletters (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS entrustments (
		id SERIAL PRIMARY KEY,
		owner_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		property_type TEXT NOT NULL,
		governorate_id INTEGER REFERENCES governorates(id) ON DELETE SET NULL,
		details TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS property_requests (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		property_type TEXT NOT NULL,
		governorate_id INTEGER REFERENCES governorates(id) ON DELETE SET NULL,
		min_price NUMERIC(14,2),
		max_price NUMERIC(14,2),
		details TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id SERIAL PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates all tables if they do not exist yet.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresStorage",
		"method":    "EnsureSchema",
	})

	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			logger.Error("Failed to execute schema statement", err, nil)
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	logger.Debug("Schema ensured.", nil)
	return nil
}
