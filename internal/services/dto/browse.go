package dto

// BrowseCriteria - критерии публичного поиска по одобренным объявлениям.
// Пустое поле - пропуск фильтра; активные фильтры объединяются по AND.
type BrowseCriteria struct {
	Query              string `form:"q"`
	ListingType        string `form:"type" validate:"omitempty,oneof=all offer request"`
	DepartureCityChina string `form:"departure_city"`
	ArrivalCityAlgeria string `form:"arrival_city"`
}

// SellerInfo - результат обогащения: имя продавца и его репутация.
// DisplayName никогда не пустой: при отсутствии профиля подставляется заглушка.
type SellerInfo struct {
	DisplayName   string  `json:"display_name"`
	CompanyName   string  `json:"company_name,omitempty"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// BrowseListingResponse - объявление, обогащенное данными продавца.
type BrowseListingResponse struct {
	ListingResponse
	Seller SellerInfo `json:"seller"`
}
