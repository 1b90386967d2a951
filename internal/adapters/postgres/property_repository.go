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

const propertyColumns = `id, title, description, price, size, bedrooms, bathrooms,
	property_type, governorate_id, directorate_id, village, basin, neighborhood,
	plot_number, address, images, featured, available, created_at`

// PropertyRepository implements port.PropertyStorage for PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func (r *PropertyRepository) GetProperties(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE available = TRUE ORDER BY created_at DESC, id DESC`, propertyColumns)
	return r.queryProperties(ctx, "GetProperties", query)
}

func (r *PropertyRepository) GetAllProperties(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties ORDER BY created_at DESC, id DESC`, propertyColumns)
	return r.queryProperties(ctx, "GetAllProperties", query)
}

func (r *PropertyRepository) GetFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE available = TRUE AND featured = TRUE ORDER BY created_at DESC, id DESC`, propertyColumns)
	return r.queryProperties(ctx, "GetFeaturedProperties", query)
}

// GetPropertyByID returns (nil, nil) when no row exists.
func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int) (*domain.Property, error) {
	logger := r.logger(ctx, "GetPropertyByID").WithFields(port.Fields{"property_id": id})

	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	var p domain.Property
	err := scanProperty(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to find property by id", err, nil)
		return nil, fmt.Errorf("failed to find property by id: %w", err)
	}

	return &p, nil
}

func (r *PropertyRepository) SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	whereClause, args := applyFilters(filters)
	query := fmt.Sprintf(`SELECT %s FROM properties %s ORDER BY created_at DESC, id DESC`, propertyColumns, whereClause)
	return r.queryProperties(ctx, "SearchProperties", query, args...)
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := r.logger(ctx, "CreateProperty")

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}
	p.Normalize()

	query := fmt.Sprintf(`INSERT INTO properties
		(title, description, price, size, bedrooms, bathrooms, property_type,
		 governorate_id, directorate_id, village, basin, neighborhood,
		 plot_number, address, images, featured, available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING %s`, propertyColumns)

	var stored domain.Property
	err := scanProperty(r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Price, p.Size, p.Bedrooms, p.Bathrooms,
		p.PropertyType, p.GovernorateID, p.DirectorateID, p.Village, p.Basin,
		p.Neighborhood, p.PlotNumber, p.Address, p.Images, p.Featured, p.Available,
	), &stored)
	if err != nil {
		logger.Error("Failed to create property", err, nil)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	logger.Debug("Property created.", port.Fields{"property_id": stored.ID})
	return &stored, nil
}

// UpdateProperty replaces the row and returns (nil, nil) when it is missing.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, id int, p *domain.Property) (*domain.Property, error) {
	logger := r.logger(ctx, "UpdateProperty").WithFields(port.Fields{"property_id": id})

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}
	p.Normalize()

	query := fmt.Sprintf(`UPDATE properties SET
		title = $1, description = $2, price = $3, size = $4, bedrooms = $5,
		bathrooms = $6, property_type = $7, governorate_id = $8,
		directorate_id = $9, village = $10, basin = $11, neighborhood = $12,
		plot_number = $13, address = $14, images = $15, featured = $16,
		available = $17
		WHERE id = $18
		RETURNING %s`, propertyColumns)

	var stored domain.Property
	err := scanProperty(r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Price, p.Size, p.Bedrooms, p.Bathrooms,
		p.PropertyType, p.GovernorateID, p.DirectorateID, p.Village, p.Basin,
		p.Neighborhood, p.PlotNumber, p.Address, p.Images, p.Featured, p.Available,
		id,
	), &stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to update property", err, nil)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &stored, nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int) (bool, error) {
	logger := r.logger(ctx, "DeleteProperty").WithFields(port.Fields{"property_id": id})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete property", err, nil)
		return false, fmt.Errorf("failed to delete property: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, method, query string, args ...interface{}) ([]domain.Property, error) {
	logger := r.logger(ctx, method)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Property, 0)
	for rows.Next() {
		var p domain.Property
		if err := scanProperty(rows, &p); err != nil {
			logger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error during property rows iteration", err, nil)
		return nil, fmt.Errorf("error during property rows iteration: %w", err)
	}

	return result, nil
}

func (r *PropertyRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    method,
	})
}

func scanProperty(row pgx.Row, p *domain.Property) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Size, &p.Bedrooms,
		&p.Bathrooms, &p.PropertyType, &p.GovernorateID, &p.DirectorateID,
		&p.Village, &p.Basin, &p.Neighborhood, &p.PlotNumber, &p.Address,
		&p.Images, &p.Featured, &p.Available, &p.CreatedAt,
	)
}
