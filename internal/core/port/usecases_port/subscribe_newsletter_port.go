package usecases_port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// SubscribeNewsletterUseCasePort subscribes an email, failing with
// domain.ErrEmailAlreadySubscribed on a duplicate.
type SubscribeNewsletterUseCasePort interface {
	Execute(ctx context.Context, email string) (*domain.Newsletter, error)
}
