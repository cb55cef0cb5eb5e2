package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
)

func invalid(message string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, message)
}

// requireName trims name and rejects it when nothing is left.
func requireName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid(field + " is required")
	}
	return trimmed, nil
}

func requirePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return invalid(field + " must be greater than zero")
	}
	return nil
}

func requireNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid(field + " cannot be negative")
	}
	return nil
}
