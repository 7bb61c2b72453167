package http

import (
	"fmt"
	"reflect"
	"regexp"

	"bookconnect/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return f.Name
	})

	validate.RegisterValidation("catalog_id", validateCatalogID)
}

var catalogIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// validateCatalogID accepts author, genre and book ids as the catalog stores
// them, including the "any" wildcard.
func validateCatalogID(fl validator.FieldLevel) bool {
	return catalogIDPattern.MatchString(fl.Field().String())
}

func ValidateStruct(s any) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at least %s characters", field, param)
			} else {
				message = fmt.Sprintf("%s must be at least %s", field, param)
			}
		case "max":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at most %s characters", field, param)
			} else {
				message = fmt.Sprintf("%s must be at most %s", field, param)
			}
		case "catalog_id":
			message = fmt.Sprintf("%s must be a catalog id", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, httpx.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}

	return details
}
