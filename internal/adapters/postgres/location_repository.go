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

// LocationRepository implements port.LocationStorage for PostgreSQL.
type LocationRepository struct {
	pool *pgxpool.Pool
}

func (r *LocationRepository) GetGovernorates(ctx context.Context) ([]domain.Governorate, error) {
	logger := r.logger(ctx, "GetGovernorates")

	rows, err := r.pool.Query(ctx, `SELECT id, name_ar, name_en, created_at FROM governorates ORDER BY id`)
	if err != nil {
		logger.Error("Failed to query governorates", err, nil)
		return nil, fmt.Errorf("failed to query governorates: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Governorate, 0)
	for rows.Next() {
		var g domain.Governorate
		if err := rows.Scan(&g.ID, &g.NameAr, &g.NameEn, &g.CreatedAt); err != nil {
			logger.Error("Failed to scan governorate row", err, nil)
			return nil, fmt.Errorf("failed to scan governorate row: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during governorate rows iteration: %w", err)
	}

	return result, nil
}

func (r *LocationRepository) GetGovernorateByID(ctx context.Context, id int) (*domain.Governorate, error) {
	logger := r.logger(ctx, "GetGovernorateByID")

	var g domain.Governorate
	err := r.pool.QueryRow(ctx,
		`SELECT id, name_ar, name_en, created_at FROM governorates WHERE id = $1`, id,
	).Scan(&g.ID, &g.NameAr, &g.NameEn, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to find governorate by id", err, nil)
		return nil, fmt.Errorf("failed to find governorate by id: %w", err)
	}

	return &g, nil
}

func (r *LocationRepository) CreateGovernorate(ctx context.Context, g *domain.Governorate) (*domain.Governorate, error) {
	logger := r.logger(ctx, "CreateGovernorate")

	var stored domain.Governorate
	err := r.pool.QueryRow(ctx,
		`INSERT INTO governorates (name_ar, name_en) VALUES ($1, $2)
		 RETURNING id, name_ar, name_en, created_at`,
		g.NameAr, g.NameEn,
	).Scan(&stored.ID, &stored.NameAr, &stored.NameEn, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create governorate", err, nil)
		return nil, fmt.Errorf("failed to create governorate: %w", err)
	}

	return &stored, nil
}

func (r *LocationRepository) UpdateGovernorate(ctx context.Context, id int, g *domain.Governorate) (*domain.Governorate, error) {
	logger := r.logger(ctx, "UpdateGovernorate")

	var stored domain.Governorate
	err := r.pool.QueryRow(ctx,
		`UPDATE governorates SET name_ar = $1, name_en = $2 WHERE id = $3
		 RETURNING id, name_ar, name_en, created_at`,
		g.NameAr, g.NameEn, id,
	).Scan(&stored.ID, &stored.NameAr, &stored.NameEn, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to update governorate", err, nil)
		return nil, fmt.Errorf("failed to update governorate: %w", err)
	}

	return &stored, nil
}

func (r *LocationRepository) DeleteGovernorate(ctx context.Context, id int) (bool, error) {
	logger := r.logger(ctx, "DeleteGovernorate")

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM governorates WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete governorate", err, nil)
		return false, fmt.Errorf("failed to delete governorate: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *LocationRepository) GetDirectorates(ctx context.Context) ([]domain.Directorate, error) {
	return r.queryDirectorates(ctx, "GetDirectorates",
		`SELECT id, governorate_id, name_ar, name_en, created_at FROM directorates ORDER BY id`)
}

func (r *LocationRepository) GetDirectoratesByGovernorate(ctx context.Context, governorateID int) ([]domain.Directorate, error) {
	return r.queryDirectorates(ctx, "GetDirectoratesByGovernorate",
		`SELECT id, governorate_id, name_ar, name_en, created_at FROM directorates WHERE governorate_id = $1 ORDER BY id`,
		governorateID)
}

func (r *LocationRepository) CreateDirectorate(ctx context.Context, d *domain.Directorate) (*domain.Directorate, error) {
	logger := r.logger(ctx, "CreateDirectorate")

	var stored domain.Directorate
	err := r.pool.QueryRow(ctx,
		`INSERT INTO directorates (governorate_id, name_ar, name_en) VALUES ($1, $2, $3)
		 RETURNING id, governorate_id, name_ar, name_en, created_at`,
		d.GovernorateID, d.NameAr, d.NameEn,
	).Scan(&stored.ID, &stored.GovernorateID, &stored.NameAr, &stored.NameEn, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create directorate", err, nil)
		return nil, fmt.Errorf("failed to create directorate: %w", err)
	}

	return &stored, nil
}

func (r *LocationRepository) UpdateDirectorate(ctx context.Context, id int, d *domain.Directorate) (*domain.Directorate, error) {
	logger := r.logger(ctx, "UpdateDirectorate")

	var stored domain.Directorate
	err := r.pool.QueryRow(ctx,
		`UPDATE directorates SET governorate_id = $1, name_ar = $2, name_en = $3 WHERE id = $4
		 RETURNING id, governorate_id, name_ar, name_en, created_at`,
		d.GovernorateID, d.NameAr, d.NameEn, id,
	).Scan(&stored.ID, &stored.GovernorateID, &stored.NameAr, &stored.NameEn, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to update directorate", err, nil)
		return nil, fmt.Errorf("failed to update directorate: %w", err)
	}

	return &stored, nil
}

func (r *LocationRepository) DeleteDirectorate(ctx context.Context, id int) (bool, error) {
	logger := r.logger(ctx, "DeleteDirectorate")

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM directorates WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete directorate", err, nil)
		return false, fmt.Errorf("failed to delete directorate: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *LocationRepository) queryDirectorates(ctx context.Context, method, query string, args ...interface{}) ([]domain.Directorate, error) {
	logger := r.logger(ctx, method)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query directorates", err, nil)
		return nil, fmt.Errorf("failed to query directorates: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Directorate, 0)
	for rows.Next() {
		var d domain.Directorate
		if err := rows.Scan(&d.ID, &d.GovernorateID, &d.NameAr, &d.NameEn, &d.CreatedAt); err != nil {
			logger.Error("Failed to scan directorate row", err, nil)
			return nil, fmt.Errorf("failed to scan directorate row: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during directorate rows iteration: %w", err)
	}

	return result, nil
}

func (r *LocationRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LocationRepository",
		"method":    method,
	})
}
