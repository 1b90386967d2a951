package usecases_port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// UpsertSettingUseCasePort creates the setting if absent, else updates it.
type UpsertSettingUseCasePort interface {
	Execute(ctx context.Context, key, value string) (*domain.SiteSetting, error)
}
