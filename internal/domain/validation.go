package domain

import (
	"math"
	"strings"
)

// RequireNonBlank fails with InvalidInput when value is empty or whitespace
func RequireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return InvalidInput(field + " is required.")
	}
	return nil
}

// RequireFinite fails with InvalidInput when value is NaN or infinite
func RequireFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return InvalidInput(field + " must be a finite number.")
	}
	return nil
}

// RequirePositive fails with InvalidInput when value is not a finite
// number greater than 0
func RequirePositive(field string, value float64) error {
	if err := RequireFinite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return InvalidInput(field + " must be greater than 0.")
	}
	return nil
}

// RequireID fails with InvalidInput when id is not a valid primary key.
// entity is the capitalized record name used in the message.
func RequireID(entity string, id int64) error {
	if id <= 0 {
		return InvalidInput(entity + " id must be positive.")
	}
	return nil
}
