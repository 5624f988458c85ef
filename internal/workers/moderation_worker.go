package workers

import (
	"context"
	"time"

	"cargolink_backend/internal/email"
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/repositories"
)

// ModerationWorker напоминает администраторам о зависших в очереди
// объявлениях. Сами статусы он никогда не меняет.
type ModerationWorker struct {
	listingRepo repositories.ListingRepository
	userRepo    repositories.UserRepository
	mail        email.Provider
	interval    time.Duration
	staleAfter  time.Duration
}

func NewModerationWorker(
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	mail email.Provider,
	interval, staleAfter time.Duration,
) *ModerationWorker {
	return &ModerationWorker{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		mail:        mail,
		interval:    interval,
		staleAfter:  staleAfter,
	}
}

// Start запускает фоновую задачу напоминаний
func (w *ModerationWorker) Start(ctx context.Context) {
	go w.remindStalePending(ctx)
}

func (w *ModerationWorker) remindStalePending(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("moderation worker stopped")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *ModerationWorker) runOnce() {
	cutoff := time.Now().Add(-w.staleAfter)

	pendingCount, err := w.listingRepo.CountStalePending(cutoff)
	if err != nil {
		logger.Error("moderation worker: failed to count stale pending listings", "error", err)
		return
	}
	if pendingCount == 0 {
		return
	}

	adminEmails, err := w.userRepo.FindAdminEmails()
	if err != nil {
		logger.Error("moderation worker: failed to load admin emails", "error", err)
		return
	}

	if err := w.mail.SendPendingReminder(adminEmails, pendingCount); err != nil {
		logger.Error("moderation worker: failed to send reminder", "error", err)
		return
	}
	logger.Info("moderation reminder sent", "pending_count", pendingCount, "admins", len(adminEmails))
}
