package email

import (
	"cargolink_backend/internal/models"
)

// Provider определяет интерфейс для отправки уведомлений
type Provider interface {
	// SendModerationDecision уведомляет владельца объявления о решении модерации
	SendModerationDecision(to string, listingTitle string, decision models.ListingStatus) error

	// SendPendingReminder напоминает администраторам о зависшей очереди модерации
	SendPendingReminder(to []string, pendingCount int64) error

	// Close закрывает соединение с провайдером
	Close() error
}
