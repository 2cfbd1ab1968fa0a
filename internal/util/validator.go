package util

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10_000_000)

// Bounds checked before any arithmetic. Comparing decimals rescales them to
// a common exponent, so "1e9999999" would otherwise expand to ten million
// digits.
const (
	minAmountExponent = -10
	maxAmountExponent = 7
	maxAmountBits     = 64
)

// ValidateAmount accepts zero and positive amounts below ten million with
// at most two decimal places. Error messages never echo the amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if amount.IsZero() {
		return nil
	}
	exp := amount.Exponent()
	if exp < minAmountExponent {
		return errors.New("amount has more than two decimal places")
	}
	if exp > maxAmountExponent || amount.Coefficient().BitLen() > maxAmountBits {
		return errors.New("amount too large")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return errors.New("amount too large")
	}
	if exp < -2 && !amount.Equal(amount.Round(2)) {
		return errors.New("amount has more than two decimal places")
	}
	return nil
}

// ValidateText checks a required free-text field against a length limit.
func ValidateText(field, value string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s is empty", field)
	}
	if len([]rune(value)) > max {
		return fmt.Errorf("%s too long, max %d characters", field, max)
	}
	return nil
}

// ValidateMobile accepts a GCash mobile number: digits with optional
// spaces, dashes and a leading plus, 10 to 13 digits in all.
func ValidateMobile(number string) error {
	digits := 0
	for i, r := range number {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-':
		case r == '+' && i == 0:
		default:
			return fmt.Errorf("invalid character %q in number", r)
		}
	}
	if digits < 10 || digits > 13 {
		return fmt.Errorf("number must have 10 to 13 digits, got %d", digits)
	}
	return nil
}
