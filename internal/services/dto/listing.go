package dto

import "time"

type CreateListingRequest struct {
	ListingType           string    `json:"listing_type" validate:"required,is-listing-type"`
	Title                 string    `json:"title" validate:"required,max=200"`
	Description           string    `json:"description" validate:"required,max=2000"`
	DepartureCityChina    string    `json:"departure_city_china" validate:"required,is-china-city"`
	ArrivalCityAlgeria    string    `json:"arrival_city_algeria" validate:"required,is-algeria-city"`
	PortLoading           string    `json:"port_loading" validate:"required,is-china-port"`
	PortArrival           string    `json:"port_arrival" validate:"required,is-algeria-port"`
	SpotsCount            int       `json:"spots_count" validate:"required,min=1"`
	CarTypes              string    `json:"car_types" validate:"required,is-car-type"`
	EstimatedShippingDate time.Time `json:"estimated_shipping_date" validate:"required"`
	ContactEmail          string    `json:"contact_email" validate:"required,email"`
	ContactPhone          string    `json:"contact_phone" validate:"required,max=30"`
}

type ListingResponse struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	ListingType           string    `json:"listing_type"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	DepartureCityChina    string    `json:"departure_city_china"`
	ArrivalCityAlgeria    string    `json:"arrival_city_algeria"`
	PortLoading           string    `json:"port_loading"`
	PortArrival           string    `json:"port_arrival"`
	SpotsCount            int       `json:"spots_count"`
	CarTypes              string    `json:"car_types"`
	EstimatedShippingDate time.Time `json:"estimated_shipping_date"`
	ContactEmail          string    `json:"contact_email"`
	ContactPhone          string    `json:"contact_phone"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// MyListingsResponse - дашборд владельца: все его объявления,
// сгруппированные по статусу модерации.
type MyListingsResponse struct {
	Pending  []*ListingResponse `json:"pending"`
	Approved []*ListingResponse `json:"approved"`
	Rejected []*ListingResponse `json:"rejected"`
}
