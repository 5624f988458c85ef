package services

import (
	"errors"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/internal/validator"
	"cargolink_backend/pkg/apperrors"
)

type ProfileService interface {
	GetOwn(actor auth.Identity) (*dto.ProfileResponse, error)
	UpdateOwn(actor auth.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	PublicProfile(userID string) (*dto.PublicProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	listingRepo repositories.ListingRepository
	ratingRepo  repositories.RatingRepository
	validator   *validator.Validator
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	listingRepo repositories.ListingRepository,
	ratingRepo repositories.RatingRepository,
	v *validator.Validator,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		listingRepo: listingRepo,
		ratingRepo:  ratingRepo,
		validator:   v,
	}
}

func (s *profileService) GetOwn(actor auth.Identity) (*dto.ProfileResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}

	profile, err := s.profileRepo.FindByUserID(actor.UserID)
	if err != nil {
		return nil, mapProfileStoreError(err)
	}
	return buildProfileResponse(profile), nil
}

// UpdateOwn меняет только поля, принадлежащие владельцу.
// Флаг is_admin отсюда недостижим: им управляет только сидинг/администрирование.
func (s *profileService) UpdateOwn(actor auth.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}

	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(actor.UserID)
	if err != nil {
		return nil, mapProfileStoreError(err)
	}

	profile.CompanyName = req.CompanyName
	profile.ContactPerson = req.ContactPerson
	profile.Phone = req.Phone

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.TransientError(err)
	}
	return buildProfileResponse(profile), nil
}

// PublicProfile - страница пользователя: профиль, репутация
// и его одобренные объявления.
func (s *profileService) PublicProfile(userID string) (*dto.PublicProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, mapProfileStoreError(err)
	}

	summary, err := s.ratingRepo.SummaryForUser(userID)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	listings, err := s.listingRepo.FindApprovedByOwner(userID)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	listingResponses := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		listingResponses = append(listingResponses, buildListingResponse(&listings[i]))
	}

	return &dto.PublicProfileResponse{
		Profile: buildProfileResponse(profile),
		Rating: &dto.RatingSummaryResponse{
			AverageRating: RoundRating(summary.AverageRating),
			TotalRatings:  summary.TotalRatings,
		},
		ApprovedListings: listingResponses,
	}, nil
}

func mapProfileStoreError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.TransientError(err)
}

func buildProfileResponse(p *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserID:        p.UserID,
		CompanyName:   p.CompanyName,
		ContactPerson: p.ContactPerson,
		Phone:         p.Phone,
		IsAdmin:       p.IsAdmin,
		CreatedAt:     p.CreatedAt,
	}
}
