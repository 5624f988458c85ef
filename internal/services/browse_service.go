package services

import (
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

// UnknownSellerName подставляется вместо имени, когда у владельца
// объявления нет профиля. Наружу никогда не уходит null.
const UnknownSellerName = "Unknown user"

// BrowseService - публичная выдача: одобренные объявления,
// обогащенные продавцом и его репутацией, после фильтрации.
type BrowseService interface {
	Browse(criteria dto.BrowseCriteria) ([]*dto.BrowseListingResponse, error)
	Enrich(listings []models.Listing) ([]*dto.BrowseListingResponse, error)
}

type browseService struct {
	listingRepo repositories.ListingRepository
	profileRepo repositories.ProfileRepository
	ratingRepo  repositories.RatingRepository
}

func NewBrowseService(
	listingRepo repositories.ListingRepository,
	profileRepo repositories.ProfileRepository,
	ratingRepo repositories.RatingRepository,
) BrowseService {
	return &browseService{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		ratingRepo:  ratingRepo,
	}
}

func (s *browseService) Browse(criteria dto.BrowseCriteria) ([]*dto.BrowseListingResponse, error) {
	listings, err := s.listingRepo.FindByStatus(models.ListingStatusApproved)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	enriched, err := s.Enrich(listings)
	if err != nil {
		return nil, err
	}

	return FilterListings(enriched, criteria), nil
}

// Enrich собирает уникальных владельцев и делает два батчевых запроса -
// профили и сводки рейтингов - вместо запроса на каждую строку выдачи.
// Оба чтения независимы и идут параллельно.
func (s *browseService) Enrich(listings []models.Listing) ([]*dto.BrowseListingResponse, error) {
	ownerIDs := distinctOwnerIDs(listings)

	var (
		profiles  []models.Profile
		summaries map[string]models.RatingSummary
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		profiles, err = s.profileRepo.FindByUserIDs(ownerIDs)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.ratingRepo.SummariesForUsers(ownerIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.TransientError(err)
	}

	profileByOwner := make(map[string]*models.Profile, len(profiles))
	for i := range profiles {
		profileByOwner[profiles[i].UserID] = &profiles[i]
	}

	result := make([]*dto.BrowseListingResponse, 0, len(listings))
	for i := range listings {
		l := &listings[i]

		seller := dto.SellerInfo{DisplayName: UnknownSellerName}
		if p, ok := profileByOwner[l.UserID]; ok {
			seller.DisplayName = p.DisplayName()
			seller.CompanyName = p.CompanyName
		}
		// Владелец без оценок получает {0.0, 0} - как в сводке рейтингов
		if summary, ok := summaries[l.UserID]; ok {
			seller.AverageRating = RoundRating(summary.AverageRating)
			seller.TotalRatings = summary.TotalRatings
		}

		result = append(result, &dto.BrowseListingResponse{
			ListingResponse: *buildListingResponse(l),
			Seller:          seller,
		})
	}
	return result, nil
}

func distinctOwnerIDs(listings []models.Listing) []string {
	seen := make(map[string]struct{}, len(listings))
	ids := make([]string, 0, len(listings))
	for i := range listings {
		if _, ok := seen[listings[i].UserID]; ok {
			continue
		}
		seen[listings[i].UserID] = struct{}{}
		ids = append(ids, listings[i].UserID)
	}
	return ids
}
