package utils

import (
	"github.com/go-playground/validator/v10"

	"realestate-listings/models"
)

var filterValidator = newFilterValidator()

func newFilterValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(priceRangeValidation, models.PropertyFilter{})
	return v
}

func priceRangeValidation(sl validator.StructLevel) {
	filter := sl.Current().Interface().(models.PropertyFilter)
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		sl.ReportError(filter.MinPrice, "MinPrice", "MinPrice", "pricerange", "")
	}
}

// ValidateFilter returns one message per violated rule. An empty result means
// the filter is safe to hand to the service.
func ValidateFilter(filter models.PropertyFilter) []string {
	err := filterValidator.Struct(filter)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, filterErrorMessage(fe))
	}
	return messages
}

func filterErrorMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "PageNumber":
		return "Page number must be greater than 0"
	case "PageSize":
		return "Page size must be between 1 and 100"
	case "MinPrice":
		if fe.Tag() == "pricerange" {
			return "Minimum price cannot be greater than maximum price"
		}
		return "Minimum price must be greater than or equal to 0"
	case "MaxPrice":
		return "Maximum price must be greater than or equal to 0"
	}
	return fe.Error()
}
