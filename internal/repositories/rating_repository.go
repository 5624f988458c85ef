package repositories

import (
	"errors"

	"cargolink_backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrDuplicateRating = errors.New("rating already exists for this user pair")

const pgUniqueViolation = "23505"

type RatingRepository interface {
	Create(rating *models.Rating) error
	FindByRated(ratedUserID string) ([]models.Rating, error)
	SummaryForUser(ratedUserID string) (*models.RatingSummary, error)
	SummariesForUsers(ratedUserIDs []string) (map[string]models.RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create вставляет строку оценки. Уникальность пары (rater, rated)
// гарантирует индекс в БД: одновременные дубли падают здесь,
// а не молча удваивают счетчик.
func (r *ratingRepository) Create(rating *models.Rating) error {
	err := r.db.Create(rating).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateRating
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRating
	}
	return err
}

func (r *ratingRepository) FindByRated(ratedUserID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.
		Where("rated_user_id = ?", ratedUserID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// SummaryForUser считает среднее и количество по строкам-источникам.
// Сводка производная: отдельного счетчика нет, расходиться нечему.
func (r *ratingRepository) SummaryForUser(ratedUserID string) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("rated_user_id = ?", ratedUserID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

type partySummaryRow struct {
	RatedUserID   string
	AverageRating float64
	TotalRatings  int64
}

// SummariesForUsers - батчевый вариант для обогащения выдачи:
// один GROUP BY запрос на весь набор продавцов вместо запроса на строку.
func (r *ratingRepository) SummariesForUsers(ratedUserIDs []string) (map[string]models.RatingSummary, error) {
	result := make(map[string]models.RatingSummary, len(ratedUserIDs))
	if len(ratedUserIDs) == 0 {
		return result, nil
	}

	var rows []partySummaryRow
	err := r.db.Model(&models.Rating{}).
		Select("rated_user_id, COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("rated_user_id IN ?", ratedUserIDs).
		Group("rated_user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.RatedUserID] = models.RatingSummary{
			AverageRating: row.AverageRating,
			TotalRatings:  row.TotalRatings,
		}
	}
	return result, nil
}
