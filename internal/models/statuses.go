package models

type ListingStatus string
type ListingType string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"

	ListingTypeOffer   ListingType = "offer"
	ListingTypeRequest ListingType = "request"
)

// IsTerminal reports whether the moderation state machine can still move the
// listing. Terminal listings never go back to pending.
func (s ListingStatus) IsTerminal() bool {
	return s == ListingStatusApproved || s == ListingStatusRejected
}

// IsValidListingStatus проверяет, что строка - один из трех статусов модерации
func IsValidListingStatus(s string) bool {
	switch ListingStatus(s) {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	}
	return false
}

// IsValidListingType проверяет тип объявления
func IsValidListingType(s string) bool {
	switch ListingType(s) {
	case ListingTypeOffer, ListingTypeRequest:
		return true
	}
	return false
}
