package email

import (
	"fmt"

	"cargolink_backend/internal/models"
)

// Шаблоны уведомлений. Письма короткие и собираются строкой:
// отдельный рендерер тут избыточен.

func moderationDecisionTemplate(listingTitle string, decision models.ListingStatus) (subject, body string) {
	switch decision {
	case models.ListingStatusApproved:
		subject = "Your listing has been approved"
		body = fmt.Sprintf(
			"<p>Good news! Your listing <b>%s</b> has been approved and is now visible to other users.</p>",
			listingTitle,
		)
	case models.ListingStatusRejected:
		subject = "Your listing has been rejected"
		body = fmt.Sprintf(
			"<p>Unfortunately your listing <b>%s</b> was rejected by a moderator. "+
				"You can delete it and submit a new one.</p>",
			listingTitle,
		)
	default:
		subject = "Your listing status has changed"
		body = fmt.Sprintf("<p>The status of your listing <b>%s</b> has changed to %s.</p>",
			listingTitle, decision)
	}
	return subject, body
}

func pendingReminderTemplate(pendingCount int64) (subject, body string) {
	subject = "Listings are waiting for moderation"
	body = fmt.Sprintf(
		"<p>There are <b>%d</b> listings waiting in the moderation queue for more than a day.</p>",
		pendingCount,
	)
	return subject, body
}
