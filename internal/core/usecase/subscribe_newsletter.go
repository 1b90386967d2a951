package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
)

// SubscribeNewsletterUseCase subscribes an email to the newsletter.
// Addresses are stored lowercase so the uniqueness check is
// case-insensitive.
type SubscribeNewsletterUseCase struct {
	storage port.LeadStorage
}

func NewSubscribeNewsletterUseCase(storage port.LeadStorage) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{storage: storage}
}

func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, email string) (*domain.Newsletter, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SubscribeNewsletterUseCase",
		"method":    "Execute",
	})

	normalized := strings.ToLower(strings.TrimSpace(email))

	subscription, err := uc.storage.CreateNewsletter(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadySubscribed) {
			return nil, err
		}
		logger.Error("Failed to subscribe email", err, nil)
		return nil, fmt.Errorf("failed to subscribe email: %w", err)
	}

	logger.Info("New newsletter subscription.", port.Fields{"subscription_id": subscription.ID})
	return subscription, nil
}
