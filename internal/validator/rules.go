package validator

import (
	"log"

	"cargolink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные правила валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - приложение не должно стартовать.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-listing-type", validateListingType)
	mustRegister("is-listing-status", validateListingStatus)
	mustRegister("is-car-type", validateCarType)
	mustRegister("is-china-city", validateChineseCity)
	mustRegister("is-algeria-city", validateAlgerianCity)
	mustRegister("is-china-port", validateChinesePort)
	mustRegister("is-algeria-port", validateAlgerianPort)
}

// --- Функции валидации ---

// Пустые значения пропускаются: за обязательность отвечает 'required'.

func validateListingType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidListingType(value)
}

func validateListingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidListingStatus(value)
}

func validateCarType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidCarType(value)
}

func validateChineseCity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsChineseCity(value)
}

func validateAlgerianCity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsAlgerianCity(value)
}

func validateChinesePort(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsChinesePort(value)
}

func validateAlgerianPort(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsAlgerianPort(value)
}
