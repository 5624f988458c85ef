package services

import (
	"testing"

	"cargolink_backend/internal/models"
	"cargolink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type browseFixture struct {
	svc         BrowseService
	listingRepo *fakeListingRepo
	profileRepo *fakeProfileRepo
	ratingRepo  *fakeRatingRepo
}

func newBrowseFixture(t *testing.T) *browseFixture {
	t.Helper()
	f := &browseFixture{
		listingRepo: newFakeListingRepo(),
		profileRepo: newFakeProfileRepo(),
		ratingRepo:  newFakeRatingRepo(),
	}
	f.svc = NewBrowseService(f.listingRepo, f.profileRepo, f.ratingRepo)
	return f
}

func (f *browseFixture) addApprovedListing(t *testing.T, ownerID, title string) *models.Listing {
	t.Helper()
	listing := &models.Listing{
		UserID:             ownerID,
		ListingType:        models.ListingTypeOffer,
		Title:              title,
		DepartureCityChina: "Guangzhou",
		ArrivalCityAlgeria: "Alger",
		SpotsCount:         3,
		Status:             models.ListingStatusApproved,
	}
	require.NoError(t, f.listingRepo.Create(listing))
	return listing
}

func (f *browseFixture) addProfile(t *testing.T, ownerID, company, contact string) {
	t.Helper()
	require.NoError(t, f.profileRepo.Create(&models.Profile{
		UserID:        ownerID,
		CompanyName:   company,
		ContactPerson: contact,
	}))
}

func (f *browseFixture) addRating(t *testing.T, raterID, ratedID string, score int) {
	t.Helper()
	require.NoError(t, f.ratingRepo.Create(&models.Rating{
		RaterUserID: raterID,
		RatedUserID: ratedID,
		Rating:      score,
	}))
}

func TestBrowse_EnrichesSellerProfileAndReputation(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	f.addApprovedListing(t, "seller-1", "5 spots from Guangzhou")
	f.addProfile(t, "seller-1", "CargoLink Ltd", "Wang Li")
	f.addRating(t, "buyer-a", "seller-1", 5)
	f.addRating(t, "buyer-b", "seller-1", 3)
	f.addRating(t, "buyer-c", "seller-1", 4)

	result, err := f.svc.Browse(dto.BrowseCriteria{})
	require.NoError(t, err)
	require.Len(t, result, 1)

	seller := result[0].Seller
	assert.Equal(t, "Wang Li", seller.DisplayName)
	assert.Equal(t, "CargoLink Ltd", seller.CompanyName)
	assert.Equal(t, 4.0, seller.AverageRating)
	assert.Equal(t, int64(3), seller.TotalRatings)
}

func TestEnrich_MissingProfileGetsSentinelName(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	listing := f.addApprovedListing(t, "seller-ghost", "Orphaned listing")

	result, err := f.svc.Enrich([]models.Listing{*listing})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, UnknownSellerName, result[0].Seller.DisplayName)
	assert.Empty(t, result[0].Seller.CompanyName)
}

func TestEnrich_UnratedSellerGetsZeroSummary(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	listing := f.addApprovedListing(t, "seller-1", "Fresh seller")
	f.addProfile(t, "seller-1", "NewCo", "")

	result, err := f.svc.Enrich([]models.Listing{*listing})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, 0.0, result[0].Seller.AverageRating)
	assert.Equal(t, int64(0), result[0].Seller.TotalRatings)
	// нет ContactPerson - подставляется название компании
	assert.Equal(t, "NewCo", result[0].Seller.DisplayName)
}

func TestEnrich_BatchesLookupsAcrossListings(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	// пять объявлений от двух владельцев - по одному батчевому
	// запросу на профили и на сводки, не по запросу на строку
	var listings []models.Listing
	for i := 0; i < 3; i++ {
		listings = append(listings, *f.addApprovedListing(t, "seller-1", "A"))
	}
	for i := 0; i < 2; i++ {
		listings = append(listings, *f.addApprovedListing(t, "seller-2", "B"))
	}
	f.addProfile(t, "seller-1", "First Co", "")
	f.addProfile(t, "seller-2", "Second Co", "")

	result, err := f.svc.Enrich(listings)
	require.NoError(t, err)
	require.Len(t, result, 5)

	assert.Equal(t, 1, f.profileRepo.batchCalls)
	assert.Equal(t, 1, f.ratingRepo.summariesCalls)
}

func TestEnrich_PreservesInputOrder(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	first := f.addApprovedListing(t, "seller-1", "first")
	second := f.addApprovedListing(t, "seller-2", "second")

	result, err := f.svc.Enrich([]models.Listing{*first, *second})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID)
	assert.Equal(t, second.ID, result[1].ID)
}

func TestBrowse_OnlyApprovedListingsVisible(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	f.addApprovedListing(t, "seller-1", "visible")
	require.NoError(t, f.listingRepo.Create(&models.Listing{
		UserID:      "seller-1",
		ListingType: models.ListingTypeOffer,
		Title:       "still pending",
		SpotsCount:  1,
		Status:      models.ListingStatusPending,
	}))

	result, err := f.svc.Browse(dto.BrowseCriteria{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "visible", result[0].Title)
}

func TestBrowse_AppliesCriteria(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	f.addApprovedListing(t, "seller-1", "RoRo from Guangzhou")
	f.addApprovedListing(t, "seller-2", "Container from Guangzhou")

	result, err := f.svc.Browse(dto.BrowseCriteria{Query: "roro"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "RoRo from Guangzhou", result[0].Title)
}

func TestBrowse_EmptyStoreReturnsEmptySlice(t *testing.T) {
	t.Parallel()
	f := newBrowseFixture(t)

	result, err := f.svc.Browse(dto.BrowseCriteria{})
	require.NoError(t, err)
	assert.Empty(t, result)
}
