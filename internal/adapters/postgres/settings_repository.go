package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository implements port.SettingsStorage for PostgreSQL.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func (r *SettingsRepository) GetSettings(ctx context.Context) ([]domain.SiteSetting, error) {
	logger := r.logger(ctx, "GetSettings")

	rows, err := r.pool.Query(ctx,
		`SELECT id, key, value, updated_at, created_at FROM site_settings ORDER BY id`)
	if err != nil {
		logger.Error("Failed to query settings", err, nil)
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SiteSetting, 0)
	for rows.Next() {
		var s domain.SiteSetting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt, &s.CreatedAt); err != nil {
			logger.Error("Failed to scan setting row", err, nil)
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during setting rows iteration: %w", err)
	}

	return result, nil
}

func (r *SettingsRepository) GetSettingByKey(ctx context.Context, key string) (*domain.SiteSetting, error) {
	logger := r.logger(ctx, "GetSettingByKey")

	var s domain.SiteSetting
	err := r.pool.QueryRow(ctx,
		`SELECT id, key, value, updated_at, created_at FROM site_settings WHERE key = $1`, key,
	).Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to find setting by key", err, nil)
		return nil, fmt.Errorf("failed to find setting by key: %w", err)
	}

	return &s, nil
}

// UpsertSetting creates the row for a new key and overwrites the value for
// an existing one, bumping updated_at either way.
func (r *SettingsRepository) UpsertSetting(ctx context.Context, key, value string) (*domain.SiteSetting, error) {
	logger := r.logger(ctx, "UpsertSetting")

	var s domain.SiteSetting
	err := r.pool.QueryRow(ctx,
		`INSERT INTO site_settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		 RETURNING id, key, value, updated_at, created_at`,
		key, value,
	).Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt, &s.CreatedAt)
	if err != nil {
		logger.Error("Failed to upsert setting", err, port.Fields{"key": key})
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SettingsRepository",
		"method":    method,
	})
}
