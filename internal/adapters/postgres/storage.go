package postgres_adapter

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage is the Postgres-backed implementation of port.Storage, composed
// of one repository per entity family sharing a single pgx pool.
type Storage struct {
	*PropertyRepository
	*LocationRepository
	*TaxonomyRepository
	*LeadRepository
	*AdminRepository
	*SettingsRepository

	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool) (*Storage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &Storage{
		PropertyRepository: &PropertyRepository{pool: pool},
		LocationRepository: &LocationRepository{pool: pool},
		TaxonomyRepository: &TaxonomyRepository{pool: pool},
		LeadRepository:     &LeadRepository{pool: pool},
		AdminRepository:    &AdminRepository{pool: pool},
		SettingsRepository: &SettingsRepository{pool: pool},
		pool:               pool,
	}, nil
}
