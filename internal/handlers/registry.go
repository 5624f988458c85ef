package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	ListingHandler *ListingHandler
	RatingHandler  *RatingHandler
	MetaHandler    *MetaHandler
}
