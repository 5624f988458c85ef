package services

import (
	"testing"
	"time"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/internal/validator"
	"cargolink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture(t *testing.T) (ListingService, *fakeListingRepo, *fakeEmailProvider) {
	t.Helper()
	repo := newFakeListingRepo()
	mail := newFakeEmailProvider()
	return NewListingService(repo, validator.New(), mail), repo, mail
}

func validCreateRequest() *dto.CreateListingRequest {
	return &dto.CreateListingRequest{
		ListingType:           "offer",
		Title:                 "5 spots on RoRo vessel",
		Description:           "Departure mid-September, accepting sedans and SUVs",
		DepartureCityChina:    "Guangzhou",
		ArrivalCityAlgeria:    "Alger",
		PortLoading:           "Port of Guangzhou",
		PortArrival:           "Port of Algiers",
		SpotsCount:            5,
		CarTypes:              "SUV",
		EstimatedShippingDate: time.Now().AddDate(0, 1, 0),
		ContactEmail:          "seller@example.com",
		ContactPhone:          "+86 555 0101",
	}
}

func TestListingSubmit_StartsPending(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newListingFixture(t)

	resp, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusPending), resp.Status)
	assert.Equal(t, "owner-1", resp.UserID)
	assert.NotEmpty(t, resp.ID)

	stored, err := repo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusPending, stored.Status)
}

func TestListingSubmit_RequiresAuthentication(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)

	_, err := svc.Submit(auth.Anonymous(), validCreateRequest())
	assertAppCode(t, err, apperrors.CodeUnauthorized)
}

func TestListingSubmit_ValidationFailures(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)
	actor := auth.Identity{UserID: "owner-1"}

	cases := map[string]func(r *dto.CreateListingRequest){
		"missing title":     func(r *dto.CreateListingRequest) { r.Title = "" },
		"unknown type":      func(r *dto.CreateListingRequest) { r.ListingType = "auction" },
		"zero spots":        func(r *dto.CreateListingRequest) { r.SpotsCount = 0 },
		"negative spots":    func(r *dto.CreateListingRequest) { r.SpotsCount = -3 },
		"unknown city":      func(r *dto.CreateListingRequest) { r.DepartureCityChina = "Atlantis" },
		"unknown car type":  func(r *dto.CreateListingRequest) { r.CarTypes = "Hovercraft" },
		"malformed contact": func(r *dto.CreateListingRequest) { r.ContactEmail = "not-an-email" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(req)
			_, err := svc.Submit(actor, req)
			assertAppCode(t, err, apperrors.CodeValidationFailed)
		})
	}
}

func TestListingApprove_AdminOnly(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Approve(auth.Identity{UserID: "owner-1"}, created.ID)
	assertAppCode(t, err, apperrors.CodeForbidden)

	_, err = svc.Approve(auth.Anonymous(), created.ID)
	assertAppCode(t, err, apperrors.CodeUnauthorized)

	resp, err := svc.Approve(auth.Identity{UserID: "admin-1", IsAdmin: true}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusApproved), resp.Status)
}

func TestListingApprove_UnknownIDNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)

	_, err := svc.Approve(auth.Identity{UserID: "admin-1", IsAdmin: true}, "does-not-exist")
	assertAppCode(t, err, apperrors.CodeNotFound)
}

func TestListingModeration_TerminalStateIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newListingFixture(t)
	admin := auth.Identity{UserID: "admin-1", IsAdmin: true}

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	first, err := svc.Approve(admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusApproved), first.Status)

	// повторный approve - no-op с тем же результатом
	second, err := svc.Approve(admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusApproved), second.Status)

	// конфликтующее решение после терминального - тоже успех без перезаписи
	third, err := svc.Reject(admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusApproved), third.Status)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusApproved, stored.Status)
}

func TestListingModeration_RacingDecisionDoesNotOverwriteTerminalState(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newListingFixture(t)

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	// Первый админ записывает approve между чтением и записью второго:
	// оба видели pending, но reject не должен перезаписать approve
	repo.beforeStatusWrite = func() {
		repo.beforeStatusWrite = nil
		require.NoError(t, repo.UpdateStatus(created.ID, models.ListingStatusPending, models.ListingStatusApproved))
	}

	resp, err := svc.Reject(auth.Identity{UserID: "admin-2", IsAdmin: true}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusApproved), resp.Status)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusApproved, stored.Status)
}

func TestListingReject(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newListingFixture(t)

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Reject(auth.Identity{UserID: "admin-1", IsAdmin: true}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ListingStatusRejected), resp.Status)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusRejected, stored.Status)
}

func TestListingModeration_NotifiesOwner(t *testing.T) {
	t.Parallel()
	svc, _, mail := newListingFixture(t)

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Approve(auth.Identity{UserID: "admin-1", IsAdmin: true}, created.ID)
	require.NoError(t, err)

	select {
	case decision := <-mail.decisions:
		assert.Equal(t, string(models.ListingStatusApproved), decision)
	case <-time.After(2 * time.Second):
		t.Fatal("moderation email was not sent")
	}
}

func TestListingListByStatus(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)
	admin := auth.Identity{UserID: "admin-1", IsAdmin: true}

	first, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)
	second, err := svc.Submit(auth.Identity{UserID: "owner-2"}, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Approve(admin, first.ID)
	require.NoError(t, err)

	pending, err := svc.ListByStatus(models.ListingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	_, err = svc.ListByStatus(models.ListingStatus("archived"))
	assert.Error(t, err)
}

func TestListingDelete_OwnerOnly(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newListingFixture(t)

	created, err := svc.Submit(auth.Identity{UserID: "owner-1"}, validCreateRequest())
	require.NoError(t, err)

	err = svc.Delete(auth.Identity{UserID: "someone-else"}, created.ID)
	assertAppCode(t, err, apperrors.CodeForbidden)

	err = svc.Delete(auth.Identity{UserID: "owner-1"}, created.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(created.ID)
	assert.Error(t, err)
}

func TestMyListings_GroupedByStatus(t *testing.T) {
	t.Parallel()
	svc, _, _ := newListingFixture(t)
	owner := auth.Identity{UserID: "owner-1"}
	admin := auth.Identity{UserID: "admin-1", IsAdmin: true}

	a, err := svc.Submit(owner, validCreateRequest())
	require.NoError(t, err)
	b, err := svc.Submit(owner, validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Submit(owner, validCreateRequest())
	require.NoError(t, err)
	// чужое объявление в дашборд не попадает
	_, err = svc.Submit(auth.Identity{UserID: "owner-2"}, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Approve(admin, a.ID)
	require.NoError(t, err)
	_, err = svc.Reject(admin, b.ID)
	require.NoError(t, err)

	mine, err := svc.MyListings(owner)
	require.NoError(t, err)
	assert.Len(t, mine.Pending, 1)
	assert.Len(t, mine.Approved, 1)
	assert.Len(t, mine.Rejected, 1)
}
