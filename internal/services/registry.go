package services

import (
	"cargolink_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	ListingService ListingService
	BrowseService  BrowseService
	RatingService  RatingService
	EmailService   email.Provider
}
