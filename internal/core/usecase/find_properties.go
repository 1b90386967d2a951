package usecase

import (
	"context"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
)

// FindPropertiesUseCase runs the public search. An empty filter set is
// equivalent to the plain published listing.
type FindPropertiesUseCase struct {
	storage port.PropertyStorage
}

func NewFindPropertiesUseCase(storage port.PropertyStorage) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{storage: storage}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FindPropertiesUseCase",
		"method":    "Execute",
	})

	properties, err := uc.storage.SearchProperties(ctx, filters)
	if err != nil {
		logger.Error("Property search failed", err, nil)
		return nil, fmt.Errorf("property search failed: %w", err)
	}

	logger.Debug("Property search finished.", port.Fields{"results": len(properties)})
	return properties, nil
}
