package dto

import "time"

type SubmitRatingRequest struct {
	RatedUserID string  `json:"rated_user_id" validate:"required"`
	ListingID   *string `json:"listing_id,omitempty"`
	Rating      int     `json:"rating" validate:"required"`
	Feedback    string  `json:"feedback" validate:"max=2000"`
}

type RatingResponse struct {
	ID          string    `json:"id"`
	RaterUserID string    `json:"rater_user_id"`
	RatedUserID string    `json:"rated_user_id"`
	ListingID   *string   `json:"listing_id,omitempty"`
	Rating      int       `json:"rating"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}

// RatingSummaryResponse - среднее с округлением до одного знака и количество.
// Для пользователя без оценок это {0.0, 0}, не ошибка.
type RatingSummaryResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}
