package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
маркетплейса (листинги, модерация, рейтинги).
*/

// =========================================================================
// Factory functions (wrap repository errors into AppError)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrNotListingOwner - удалять объявление может только его владелец.
var ErrNotListingOwner = New(
	CodeForbidden,
	"listings",
	"Only the listing owner may perform this operation",
	http.StatusForbidden,
)

// ErrSelfRating - пользователь пытается оценить сам себя.
var ErrSelfRating = New(
	CodeValidationFailed,
	"ratings",
	"You cannot rate yourself",
	http.StatusBadRequest,
)

// ErrRatingOutOfRange - оценка вне диапазона 1..5.
var ErrRatingOutOfRange = New(
	CodeValidationFailed,
	"ratings",
	"Rating must be an integer between 1 and 5",
	http.StatusBadRequest,
)

// ErrDuplicateRating - пара (оценивающий, оцениваемый) уже существует.
var ErrDuplicateRating = New(
	CodeConflict,
	"ratings",
	"You have already rated this user",
	http.StatusConflict,
)
