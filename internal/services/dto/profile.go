package dto

import "time"

type UpdateProfileRequest struct {
	CompanyName   string `json:"company_name" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"max=30"`
}

type ProfileResponse struct {
	UserID        string    `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicProfileResponse - публичная страница пользователя: профиль,
// его репутация и его одобренные объявления.
type PublicProfileResponse struct {
	Profile          *ProfileResponse       `json:"profile"`
	Rating           *RatingSummaryResponse `json:"rating"`
	ApprovedListings []*ListingResponse     `json:"approved_listings"`
}
