package services

import (
	"errors"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/email"
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/internal/validator"
	"cargolink_backend/pkg/apperrors"
)

// ListingService - воркфлоу модерации: pending -> {approved, rejected}.
// Решение принимает только администратор; терминальные статусы
// никогда не откатываются обратно в pending.
type ListingService interface {
	Submit(actor auth.Identity, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	Approve(actor auth.Identity, listingID string) (*dto.ListingResponse, error)
	Reject(actor auth.Identity, listingID string) (*dto.ListingResponse, error)
	ListByStatus(status models.ListingStatus) ([]*dto.ListingResponse, error)
	MyListings(actor auth.Identity) (*dto.MyListingsResponse, error)
	Delete(actor auth.Identity, listingID string) error
}

type listingService struct {
	listingRepo repositories.ListingRepository
	validator   *validator.Validator
	mail        email.Provider
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	v *validator.Validator,
	mail email.Provider,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		validator:   v,
		mail:        mail,
	}
}

// ---------------- Owner operations ----------------

func (s *listingService) Submit(actor auth.Identity, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("Authentication required to submit a listing")
	}

	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if req.SpotsCount < 1 {
		// Дублирует правило min=1: инвариант ядра, не только DTO
		return nil, apperrors.ValidationError(map[string]string{
			"spots_count": "Must be at least 1",
		})
	}

	listing := &models.Listing{
		UserID:                actor.UserID,
		ListingType:           models.ListingType(req.ListingType),
		Title:                 req.Title,
		Description:           req.Description,
		DepartureCityChina:    req.DepartureCityChina,
		ArrivalCityAlgeria:    req.ArrivalCityAlgeria,
		PortLoading:           req.PortLoading,
		PortArrival:           req.PortArrival,
		SpotsCount:            req.SpotsCount,
		CarTypes:              req.CarTypes,
		EstimatedShippingDate: req.EstimatedShippingDate,
		ContactEmail:          req.ContactEmail,
		ContactPhone:          req.ContactPhone,
		Status:                models.ListingStatusPending,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		return nil, apperrors.TransientError(err)
	}

	logger.Info("listing submitted", "listing_id", listing.ID, "owner_id", actor.UserID)
	return buildListingResponse(listing), nil
}

func (s *listingService) MyListings(actor auth.Identity) (*dto.MyListingsResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}

	listings, err := s.listingRepo.FindByOwner(actor.UserID)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	resp := &dto.MyListingsResponse{
		Pending:  []*dto.ListingResponse{},
		Approved: []*dto.ListingResponse{},
		Rejected: []*dto.ListingResponse{},
	}
	for i := range listings {
		item := buildListingResponse(&listings[i])
		switch listings[i].Status {
		case models.ListingStatusApproved:
			resp.Approved = append(resp.Approved, item)
		case models.ListingStatusRejected:
			resp.Rejected = append(resp.Rejected, item)
		default:
			resp.Pending = append(resp.Pending, item)
		}
	}
	return resp, nil
}

func (s *listingService) Delete(actor auth.Identity, listingID string) error {
	if !actor.IsAuthenticated() {
		return apperrors.NewUnauthorizedError("Authentication required")
	}

	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		return mapListingStoreError(err)
	}

	if listing.UserID != actor.UserID {
		return apperrors.ErrNotListingOwner
	}

	if err := s.listingRepo.Delete(listingID); err != nil {
		return mapListingStoreError(err)
	}

	logger.Info("listing deleted", "listing_id", listingID, "owner_id", actor.UserID)
	return nil
}

// ---------------- Admin operations ----------------

func (s *listingService) Approve(actor auth.Identity, listingID string) (*dto.ListingResponse, error) {
	return s.transition(actor, listingID, models.ListingStatusApproved)
}

func (s *listingService) Reject(actor auth.Identity, listingID string) (*dto.ListingResponse, error) {
	return s.transition(actor, listingID, models.ListingStatusRejected)
}

// transition применяет решение модерации.
// Повторное решение по уже терминальному объявлению - идемпотентный no-op:
// возвращаем текущее состояние без ошибки, в том числе при гонке двух админов.
func (s *listingService) transition(actor auth.Identity, listingID string, target models.ListingStatus) (*dto.ListingResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	if !actor.IsAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		return nil, mapListingStoreError(err)
	}

	if listing.Status.IsTerminal() {
		return buildListingResponse(listing), nil
	}

	// Запись идет через compare-and-swap из pending: проигравший гонку
	// админ получает ErrStaleListingStatus, не перезапись чужого решения
	if err := s.listingRepo.UpdateStatus(listingID, models.ListingStatusPending, target); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStaleListingStatus):
			current, rerr := s.listingRepo.FindByID(listingID)
			if rerr != nil {
				return nil, mapListingStoreError(rerr)
			}
			if current.Status.IsTerminal() {
				// Решение уже принято другим админом - идемпотентный успех
				return buildListingResponse(current), nil
			}
			return nil, apperrors.TransientError(err)
		case errors.Is(err, repositories.ErrListingNotFound):
			// Удалено между чтением и записью - владелец успел стереть
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.TransientError(err)
		}
	}
	listing.Status = target

	logger.Info("listing moderated",
		"listing_id", listingID,
		"decision", string(target),
		"admin_id", actor.UserID,
	)

	s.notifyOwner(listing, target)

	return buildListingResponse(listing), nil
}

func (s *listingService) ListByStatus(status models.ListingStatus) ([]*dto.ListingResponse, error) {
	if !models.IsValidListingStatus(string(status)) {
		return nil, apperrors.ErrInvalidStatus("listings", "Unknown listing status")
	}

	listings, err := s.listingRepo.FindByStatus(status)
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	result := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		result = append(result, buildListingResponse(&listings[i]))
	}
	return result, nil
}

// notifyOwner отправляет письмо о решении модерации.
// Письмо не на критическом пути: ошибку только логируем.
func (s *listingService) notifyOwner(listing *models.Listing, decision models.ListingStatus) {
	if s.mail == nil || listing.ContactEmail == "" {
		return
	}
	go func() {
		if err := s.mail.SendModerationDecision(listing.ContactEmail, listing.Title, decision); err != nil {
			logger.Warn("failed to send moderation email",
				"listing_id", listing.ID, "error", err)
		}
	}()
}

// ---------------- Helpers ----------------

func mapListingStoreError(err error) error {
	if errors.Is(err, repositories.ErrListingNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.TransientError(err)
}

func buildListingResponse(l *models.Listing) *dto.ListingResponse {
	return &dto.ListingResponse{
		ID:                    l.ID,
		UserID:                l.UserID,
		ListingType:           string(l.ListingType),
		Title:                 l.Title,
		Description:           l.Description,
		DepartureCityChina:    l.DepartureCityChina,
		ArrivalCityAlgeria:    l.ArrivalCityAlgeria,
		PortLoading:           l.PortLoading,
		PortArrival:           l.PortArrival,
		SpotsCount:            l.SpotsCount,
		CarTypes:              l.CarTypes,
		EstimatedShippingDate: l.EstimatedShippingDate,
		ContactEmail:          l.ContactEmail,
		ContactPhone:          l.ContactPhone,
		Status:                string(l.Status),
		CreatedAt:             l.CreatedAt,
	}
}
