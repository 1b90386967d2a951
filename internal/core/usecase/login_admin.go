package usecase

import (
	"context"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
)

// LoginAdminUseCase verifies admin credentials and opens a session. An
// unknown username and a wrong password are indistinguishable to the
// caller.
type LoginAdminUseCase struct {
	storage  port.AdminStorage
	sessions port.SessionStorePort
}

func NewLoginAdminUseCase(storage port.AdminStorage, sessions port.SessionStorePort) *LoginAdminUseCase {
	return &LoginAdminUseCase{storage: storage, sessions: sessions}
}

func (uc *LoginAdminUseCase) Execute(ctx context.Context, username, password string) (*domain.Admin, string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LoginAdminUseCase",
		"method":    "Execute",
	})

	admin, err := uc.storage.GetAdminByUsername(ctx, username)
	if err != nil {
		logger.Error("Failed to look up admin", err, nil)
		return nil, "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil || !admin.CheckPassword(password) {
		logger.Warn("Rejected login attempt.", port.Fields{"username": username})
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.sessions.Create(admin.ID)
	if err != nil {
		logger.Error("Failed to create session", err, nil)
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	logger.Info("Admin logged in.", port.Fields{"admin_id": admin.ID})
	return admin, token, nil
}
