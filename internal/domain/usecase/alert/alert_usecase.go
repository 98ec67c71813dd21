package alert

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// AlertUseCase carries the read-mostly notification feed
type AlertUseCase struct {
	alertRepo    persistence.AlertRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAlertUseCase creates a new AlertUseCase
func NewAlertUseCase(alertRepo persistence.AlertRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *AlertUseCase {
	return &AlertUseCase{
		alertRepo:    alertRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Publish creates a broadcast alert (empty recipient) or a direct alert for
// one username. Admin capability is required.
func (u *AlertUseCase) Publish(ctx context.Context, actor *entity.Account, message, recipient string) (*entity.Alert, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	a, err := entity.NewAlert(message, recipient, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := u.alertRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	u.logger.Info("Alert published", map[string]any{
		"recipient": recipient,
		"broadcast": a.IsBroadcast(),
	})
	return a, nil
}

// Feed returns the alerts visible to one account: every broadcast alert
// plus the ones addressed to its username
func (u *AlertUseCase) Feed(ctx context.Context, username string) ([]*entity.Alert, error) {
	return u.alertRepo.ListFeed(ctx, username)
}
