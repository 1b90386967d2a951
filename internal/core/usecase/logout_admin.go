package usecase

import (
	"context"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/port"
)

// LogoutAdminUseCase invalidates the session token. The token is dead as
// soon as Execute returns, no grace period.
type LogoutAdminUseCase struct {
	sessions port.SessionStorePort
}

func NewLogoutAdminUseCase(sessions port.SessionStorePort) *LogoutAdminUseCase {
	return &LogoutAdminUseCase{sessions: sessions}
}

func (uc *LogoutAdminUseCase) Execute(ctx context.Context, token string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LogoutAdminUseCase",
		"method":    "Execute",
	})

	uc.sessions.Delete(token)
	logger.Debug("Session invalidated.", nil)
	return nil
}
