package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/benx421/payment-gateway/e4/internal/models"
)

// ValidateCardNumber checks that a card number is 13-19 digits and passes the Luhn check
func ValidateCardNumber(cardNumber string) error {
	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	sum := 0
	isSecond := false

	for i := len(cardNumber) - 1; i >= 0; i-- {
		c := cardNumber[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid card number: must contain only digits")
		}
		digit := int(c - '0')

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	if sum%10 != 0 {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// Card brands accepted by E4.
const (
	BrandVisa            = "visa"
	BrandMaster          = "master"
	BrandAmericanExpress = "american_express"
	BrandDiscover        = "discover"
)

// CardBrand identifies the brand of a card number from its prefix and length,
// or returns "" when the number belongs to no supported brand.
func CardBrand(cardNumber string) string {
	n := len(cardNumber)
	prefix := func(digits int) int {
		if n < digits {
			return -1
		}
		p, err := strconv.Atoi(cardNumber[:digits])
		if err != nil {
			return -1
		}
		return p
	}

	switch {
	case prefix(1) == 4 && (n == 13 || n == 16 || n == 19):
		return BrandVisa
	case n == 16 && ((prefix(2) >= 51 && prefix(2) <= 55) || (prefix(4) >= 2221 && prefix(4) <= 2720)):
		return BrandMaster
	case n == 15 && (prefix(2) == 34 || prefix(2) == 37):
		return BrandAmericanExpress
	case n >= 16 && n <= 19 && (prefix(4) == 6011 || prefix(2) == 65 || (prefix(3) >= 644 && prefix(3) <= 649)):
		return BrandDiscover
	}
	return ""
}

// ValidateCardBrand rejects card numbers outside the supported brands
func ValidateCardBrand(cardNumber string) error {
	if CardBrand(cardNumber) == "" {
		return fmt.Errorf("unsupported card brand: accepted brands are visa, master, american_express and discover")
	}
	return nil
}

// ValidateExpiry checks that a card has not expired as of now.
// A card is valid through the last day of its expiry month.
func ValidateExpiry(expiryMonth, expiryYear int, now time.Time) error {
	if expiryMonth < 1 || expiryMonth > 12 {
		return fmt.Errorf("invalid month: must be between 1 and 12")
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())

	if expiryYear < currentYear {
		return fmt.Errorf("card expired: year %d is in the past", expiryYear)
	}

	if expiryYear == currentYear && expiryMonth < currentMonth {
		return fmt.Errorf("card expired: %02d/%d", expiryMonth, expiryYear)
	}

	return nil
}

// ValidateCVV checks if CVV format is valid.
func ValidateCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return fmt.Errorf("invalid CVV: must be 3 or 4 digits")
	}

	for _, r := range cvv {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid CVV: must contain only digits")
		}
	}

	return nil
}

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// validateCard runs the card checks in order. The CVV is optional.
func validateCard(card models.CreditCard, now time.Time) error {
	if err := ValidateCardNumber(card.Number); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCard, Message: err.Error()}
	}

	if err := ValidateCardBrand(card.Number); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCard, Message: err.Error()}
	}

	if card.HasVerificationValue() {
		if err := ValidateCVV(card.VerificationValue); err != nil {
			return &ServiceError{Code: ErrCodeInvalidCVV, Message: err.Error()}
		}
	}

	if err := ValidateExpiry(card.Month, card.Year, now); err != nil {
		return &ServiceError{Code: ErrCodeCardExpired, Message: err.Error()}
	}

	return nil
}
