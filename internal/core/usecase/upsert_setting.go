package usecase

import (
	"context"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
)

// UpsertSettingUseCase writes one piece of site copy, creating the key on
// first use.
type UpsertSettingUseCase struct {
	storage port.SettingsStorage
}

func NewUpsertSettingUseCase(storage port.SettingsStorage) *UpsertSettingUseCase {
	return &UpsertSettingUseCase{storage: storage}
}

func (uc *UpsertSettingUseCase) Execute(ctx context.Context, key, value string) (*domain.SiteSetting, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "UpsertSettingUseCase",
		"method":    "Execute",
	})

	setting, err := uc.storage.UpsertSetting(ctx, key, value)
	if err != nil {
		logger.Error("Failed to upsert setting", err, port.Fields{"key": key})
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	logger.Info("Site setting updated.", port.Fields{"key": key})
	return setting, nil
}
