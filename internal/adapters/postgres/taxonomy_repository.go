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

// TaxonomyRepository implements port.TaxonomyStorage for PostgreSQL.
type TaxonomyRepository struct {
	pool *pgxpool.Pool
}

func (r *TaxonomyRepository) GetPropertyTypes(ctx context.Context, activeOnly bool) ([]domain.PropertyType, error) {
	logger := r.logger(ctx, "GetPropertyTypes")

	query := `SELECT id, name_ar, name_en, active, created_at FROM property_types ORDER BY id`
	if activeOnly {
		query = `SELECT id, name_ar, name_en, active, created_at FROM property_types WHERE active = TRUE ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Failed to query property types", err, nil)
		return nil, fmt.Errorf("failed to query property types: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PropertyType, 0)
	for rows.Next() {
		var t domain.PropertyType
		if err := rows.Scan(&t.ID, &t.NameAr, &t.NameEn, &t.Active, &t.CreatedAt); err != nil {
			logger.Error("Failed to scan property type row", err, nil)
			return nil, fmt.Errorf("failed to scan property type row: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during property type rows iteration: %w", err)
	}

	return result, nil
}

func (r *TaxonomyRepository) CreatePropertyType(ctx context.Context, t *domain.PropertyType) (*domain.PropertyType, error) {
	logger := r.logger(ctx, "CreatePropertyType")

	var stored domain.PropertyType
	err := r.pool.QueryRow(ctx,
		`INSERT INTO property_types (name_ar, name_en, active) VALUES ($1, $2, $3)
		 RETURNING id, name_ar, name_en, active, created_at`,
		t.NameAr, t.NameEn, t.Active,
	).Scan(&stored.ID, &stored.NameAr, &stored.NameEn, &stored.Active, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create property type", err, nil)
		return nil, fmt.Errorf("failed to create property type: %w", err)
	}

	return &stored, nil
}

func (r *TaxonomyRepository) UpdatePropertyType(ctx context.Context, id int, t *domain.PropertyType) (*domain.PropertyType, error) {
	logger := r.logger(ctx, "UpdatePropertyType")

	var stored domain.PropertyType
	err := r.pool.QueryRow(ctx,
		`UPDATE property_types SET name_ar = $1, name_en = $2, active = $3 WHERE id = $4
		 RETURNING id, name_ar, name_en, active, created_at`,
		t.NameAr, t.NameEn, t.Active, id,
	).Scan(&stored.ID, &stored.NameAr, &stored.NameEn, &stored.Active, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to update property type", err, nil)
		return nil, fmt.Errorf("failed to update property type: %w", err)
	}

	return &stored, nil
}

func (r *TaxonomyRepository) DeletePropertyType(ctx context.Context, id int) (bool, error) {
	logger := r.logger(ctx, "DeletePropertyType")

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM property_types WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete property type", err, nil)
		return false, fmt.Errorf("failed to delete property type: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *TaxonomyRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TaxonomyRepository",
		"method":    method,
	})
}
