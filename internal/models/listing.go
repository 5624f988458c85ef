package models

import "time"

// Listing - предложение или запрос мест в контейнере Китай -> Алжир
type Listing struct {
	BaseModel
	UserID                string        `gorm:"not null;index" json:"user_id"`
	ListingType           ListingType   `gorm:"not null;index" json:"listing_type"`
	Title                 string        `gorm:"not null" json:"title"`
	Description           string        `gorm:"not null" json:"description"`
	DepartureCityChina    string        `gorm:"not null" json:"departure_city_china"`
	ArrivalCityAlgeria    string        `gorm:"not null" json:"arrival_city_algeria"`
	PortLoading           string        `gorm:"not null" json:"port_loading"`
	PortArrival           string        `gorm:"not null" json:"port_arrival"`
	SpotsCount            int           `gorm:"not null;check:spots_count >= 1" json:"spots_count"`
	CarTypes              string        `gorm:"not null" json:"car_types"`
	EstimatedShippingDate time.Time     `gorm:"not null" json:"estimated_shipping_date"`
	ContactEmail          string        `gorm:"not null" json:"contact_email"`
	ContactPhone          string        `gorm:"not null" json:"contact_phone"`
	Status                ListingStatus `gorm:"not null;default:'pending';index" json:"status"`

	// Relations
	Owner *User `gorm:"foreignKey:UserID" json:"-"`
}
