package app

import (
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/models"
)

// NoopEmailProvider используется, когда SMTP не сконфигурирован:
// письма не уходят, но воркфлоу модерации работает.
type NoopEmailProvider struct{}

func (p *NoopEmailProvider) SendModerationDecision(to string, listingTitle string, decision models.ListingStatus) error {
	logger.Debug("noop email: moderation decision",
		"to", to, "listing", listingTitle, "decision", string(decision))
	return nil
}

func (p *NoopEmailProvider) SendPendingReminder(to []string, pendingCount int64) error {
	logger.Debug("noop email: pending reminder", "recipients", len(to), "count", pendingCount)
	return nil
}

func (p *NoopEmailProvider) Close() error {
	return nil
}
