package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating - единичная оценка одним пользователем другого.
// Пара (rater, rated) уникальна на уровне БД, повторная оценка - конфликт.
type Rating struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	RaterUserID string    `gorm:"not null;index;uniqueIndex:idx_user_ratings_rater_rated" json:"rater_user_id"`
	RatedUserID string    `gorm:"not null;index;uniqueIndex:idx_user_ratings_rater_rated" json:"rated_user_id"`
	ListingID   *string   `gorm:"index" json:"listing_id,omitempty"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`

	// Relations
	Rater *User `gorm:"foreignKey:RaterUserID" json:"-"`
	Rated *User `gorm:"foreignKey:RatedUserID" json:"-"`
}

func (Rating) TableName() string {
	return "user_ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RatingSummary - производная сводка по оцениваемому пользователю.
// Никогда не хранится: всегда пересчитывается из строк user_ratings.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}
