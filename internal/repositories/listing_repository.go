package repositories

import (
	"errors"
	"time"

	"cargolink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	// ErrStaleListingStatus - статус успел измениться между чтением и записью
	ErrStaleListingStatus = errors.New("listing status changed since read")
)

type ListingRepository interface {
	Create(listing *models.Listing) error
	FindByID(id string) (*models.Listing, error)
	FindByStatus(status models.ListingStatus) ([]models.Listing, error)
	FindByOwner(userID string) ([]models.Listing, error)
	FindApprovedByOwner(userID string) ([]models.Listing, error)
	UpdateStatus(id string, from, to models.ListingStatus) error
	CountStalePending(cutoff time.Time) (int64, error)
	Delete(id string) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) FindByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FindByStatus возвращает объявления в статусе, новые первыми.
// Порядок created_at DESC - контракт для поискового движка, он не пересортировывает.
func (r *listingRepository) FindByStatus(status models.ListingStatus) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindByOwner(userID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindApprovedByOwner(userID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.ListingStatusApproved).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// UpdateStatus - compare-and-swap: запись проходит только из статуса from.
// Терминальный статус перезаписать нельзя, даже если два админа решают
// одновременно - проигравший получает ErrStaleListingStatus.
func (r *listingRepository) UpdateStatus(id string, from, to models.ListingStatus) error {
	result := r.db.Model(&models.Listing{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Listing{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrListingNotFound
		}
		return ErrStaleListingStatus
	}
	return nil
}

// CountStalePending считает объявления, зависшие в очереди модерации
// дольше порога
func (r *listingRepository) CountStalePending(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Listing{}).
		Where("status = ? AND created_at < ?", models.ListingStatusPending, cutoff).
		Count(&count).Error
	return count, err
}

func (r *listingRepository) Delete(id string) error {
	result := r.db.Delete(&models.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
