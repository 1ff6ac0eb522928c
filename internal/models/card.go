package models

import (
	"strings"
)

// CreditCard holds the card details sent with authorize and purchase requests
type CreditCard struct {
	Number            string
	FirstName         string
	LastName          string
	VerificationValue string
	Month             int
	Year              int
}

// Name returns the cardholder name as first and last name joined by a space.
func (c CreditCard) Name() string {
	return c.FirstName + " " + c.LastName
}

// HasVerificationValue reports whether a CVV was supplied.
func (c CreditCard) HasVerificationValue() bool {
	return strings.TrimSpace(c.VerificationValue) != ""
}
