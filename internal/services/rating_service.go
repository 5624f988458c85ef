package services

import (
	"errors"
	"math"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/pkg/apperrors"
)

// RatingService - агрегатор репутации. Сводка всегда производная:
// считается из строк user_ratings на чтении и не хранится счетчиком,
// поэтому разойтись с источником не может.
type RatingService interface {
	Submit(actor auth.Identity, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error)
	Summary(ratedUserID string) (*dto.RatingSummaryResponse, error)
	ListForUser(ratedUserID string) ([]*dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo repositories.RatingRepository
	userRepo   repositories.UserRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	userRepo repositories.UserRepository,
) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
	}
}

func (s *ratingService) Submit(actor auth.Identity, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("You must be logged in to submit a rating")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}
	if req.RatedUserID == "" {
		return nil, apperrors.ValidationError(map[string]string{
			"rated_user_id": "This field is required",
		})
	}
	if req.RatedUserID == actor.UserID {
		return nil, apperrors.ErrSelfRating
	}

	if _, err := s.userRepo.FindByID(req.RatedUserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.TransientError(err)
	}

	rating := &models.Rating{
		RaterUserID: actor.UserID,
		RatedUserID: req.RatedUserID,
		ListingID:   req.ListingID,
		Rating:      req.Rating,
		Feedback:    req.Feedback,
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRating) {
			return nil, apperrors.ErrDuplicateRating
		}
		return nil, apperrors.TransientError(err)
	}

	logger.Info("rating submitted",
		"rater_id", actor.UserID,
		"rated_id", req.RatedUserID,
		"rating", req.Rating,
	)

	return buildRatingResponse(rating), nil
}

// Summary возвращает {среднее, количество} по оцениваемому пользователю.
// Для пользователя без оценок это {0.0, 0} - определенное поведение, не ошибка.
func (s *ratingService) Summary(ratedUserID string) (*dto.RatingSummaryResponse, error) {
	summary, err := s.ratingRepo.SummaryForUser(ratedUserID)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	return &dto.RatingSummaryResponse{
		AverageRating: RoundRating(summary.AverageRating),
		TotalRatings:  summary.TotalRatings,
	}, nil
}

func (s *ratingService) ListForUser(ratedUserID string) ([]*dto.RatingResponse, error) {
	ratings, err := s.ratingRepo.FindByRated(ratedUserID)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	result := make([]*dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		result = append(result, buildRatingResponse(&ratings[i]))
	}
	return result, nil
}

// RoundRating округляет среднее до одного знака для отображения
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func buildRatingResponse(r *models.Rating) *dto.RatingResponse {
	return &dto.RatingResponse{
		ID:          r.ID,
		RaterUserID: r.RaterUserID,
		RatedUserID: r.RatedUserID,
		ListingID:   r.ListingID,
		Rating:      r.Rating,
		Feedback:    r.Feedback,
		CreatedAt:   r.CreatedAt,
	}
}
