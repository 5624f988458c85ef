package services

import (
	"strings"

	"cargolink_backend/internal/models"
	"cargolink_backend/internal/services/dto"
)

// FilterListings - чистая функция поиска по выдаче.
// Критерии объединяются по AND, пустой критерий пропускает все.
// Порядок входа сохраняется, пересортировки нет: при одинаковом входе
// и критериях результат всегда одинаков.
//
// Неодобренные объявления отбрасываются безусловно: даже если выше по
// стеку в набор попала строка не в статусе approved, наружу она не выйдет.
func FilterListings(listings []*dto.BrowseListingResponse, criteria dto.BrowseCriteria) []*dto.BrowseListingResponse {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	result := make([]*dto.BrowseListingResponse, 0, len(listings))
	for _, l := range listings {
		if l.Status != string(models.ListingStatusApproved) {
			continue
		}
		if !matchesType(l, criteria.ListingType) {
			continue
		}
		if criteria.DepartureCityChina != "" && l.DepartureCityChina != criteria.DepartureCityChina {
			continue
		}
		if criteria.ArrivalCityAlgeria != "" && l.ArrivalCityAlgeria != criteria.ArrivalCityAlgeria {
			continue
		}
		if !matchesQuery(l, query) {
			continue
		}
		result = append(result, l)
	}
	return result
}

func matchesType(l *dto.BrowseListingResponse, listingType string) bool {
	if listingType == "" || listingType == "all" {
		return true
	}
	return l.ListingType == listingType
}

// matchesQuery ищет подстроку без учета регистра в заголовке, описании
// и обоих городах; достаточно совпадения по любому из полей.
func matchesQuery(l *dto.BrowseListingResponse, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		strings.Contains(strings.ToLower(l.DepartureCityChina), query) ||
		strings.Contains(strings.ToLower(l.ArrivalCityAlgeria), query)
}
