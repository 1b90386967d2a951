package usecases_port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// FindPropertiesUseCasePort is the public search: present filters narrow
// the result, absent filters are no-ops, only published rows come back.
type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}
