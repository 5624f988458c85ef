package repositories

import (
	"errors"

	"cargolink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	CreateInTx(tx *gorm.DB, profile *models.Profile) error
	FindByUserID(userID string) (*models.Profile, error)
	FindByUserIDs(userIDs []string) ([]models.Profile, error)
	Update(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// CreateInTx используется регистрацией: user + profile создаются одной транзакцией
func (r *profileRepository) CreateInTx(tx *gorm.DB, profile *models.Profile) error {
	return tx.Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindByUserIDs - батчевая выборка профилей для обогащения выдачи.
// Отсутствующие профили не ошибка: вызывающий подставляет заглушку.
func (r *profileRepository) FindByUserIDs(userIDs []string) ([]models.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.Profile
	err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
