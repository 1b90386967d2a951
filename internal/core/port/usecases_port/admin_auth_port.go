package usecases_port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// LoginAdminUseCasePort verifies credentials and issues a session token.
// Unknown usernames and wrong passwords both surface as
// domain.ErrInvalidCredentials.
type LoginAdminUseCasePort interface {
	Execute(ctx context.Context, username, password string) (*domain.Admin, string, error)
}

// LogoutAdminUseCasePort invalidates a session token.
type LogoutAdminUseCasePort interface {
	Execute(ctx context.Context, token string) error
}
