// internal/validator/clinic_validator.go
package validator

import (
	"fmt"
	"regexp"
)

var idNumberPattern = regexp.MustCompile(`^[0-9]{6,12}$`)

// ValidateIDNumber validates a student or employee ID number.
func ValidateIDNumber(value string) error {
	if !idNumberPattern.MatchString(value) {
		return fmt.Errorf("id_number must contain 6 to 12 digits, provided: %q", value)
	}
	return nil
}

// ValidateQuantity validates a stock movement quantity.
func ValidateQuantity(quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero, provided: %d", quantity)
	}
	return nil
}

// ValidateLowStockThreshold validates a medicine's reorder threshold.
func ValidateLowStockThreshold(threshold int32) error {
	if threshold < 0 {
		return fmt.Errorf("low_stock_threshold cannot be negative, provided: %d", threshold)
	}
	return nil
}
