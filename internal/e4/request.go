package e4

import (
	"fmt"
	"strings"

	"github.com/benx421/payment-gateway/e4/internal/models"
)

const verificationDelimiter = "|"

// Request is the operation-specific field set of one outbound E4 transaction
type Request map[string]any

func newCardRequest(money int64, card models.CreditCard, opts models.Options) Request {
	req := Request{}
	req.addAmount(money)
	req.addInvoice(opts)
	req.addCreditCard(card)
	req.addAddress(opts)
	return req
}

func newTaggedRequest(money int64, auth Authorization) (Request, error) {
	tag, err := auth.TagNumber()
	if err != nil {
		return nil, err
	}

	req := Request{}
	req.addAmount(money)
	req.addAuthorization(auth.Reference)
	req.addTransactionTag(tag)
	return req, nil
}

func (r Request) addAmount(money int64) {
	r["amount"] = formatAmount(money)
}

func (r Request) addInvoice(opts models.Options) {
	if opts.OrderID != "" {
		r["reference_no"] = opts.OrderID
	}
}

func (r Request) addAuthorization(reference string) {
	r["authorization_num"] = reference
}

func (r Request) addTransactionTag(tag int64) {
	r["transaction_tag"] = tag
}

func (r Request) addCreditCard(card models.CreditCard) {
	r["cc_number"] = card.Number
	r["cc_expiry"] = expiryDate(card)
	r["cardholder_name"] = card.Name()
	if card.HasVerificationValue() {
		r["cc_verification_str2"] = card.VerificationValue
		r["cvd_presence_ind"] = "1"
	}
}

func (r Request) addAddress(opts models.Options) {
	if billing := opts.Billing(); billing != nil {
		r["cc_verification_str1"] = verificationString(billing)
	}

	if shipping := opts.ShippingAddress; shipping != nil {
		r["level3_shiptoaddress_type"] = map[string]string{
			"address1": shipping.Address1,
			"city":     shipping.City,
			"state":    shipping.State,
			"zip":      shipping.Zip,
			"country":  shipping.Country,
			"phone":    shipping.Phone,
			"name":     shipping.Name,
			"email":    opts.Email,
		}
	}
}

// verificationString encodes a billing address as street|zip|city|state|country.
func verificationString(addr *models.Address) string {
	street := addr.Address1
	if strings.TrimSpace(addr.Address2) != "" {
		street += " " + addr.Address2
	}

	return strings.Join([]string{
		strings.TrimSpace(street),
		strings.TrimSpace(addr.Zip),
		strings.TrimSpace(addr.City),
		strings.TrimSpace(addr.State),
		strings.TrimSpace(addr.Country),
	}, verificationDelimiter)
}

// formatAmount renders minor units as a major-unit decimal with two fraction digits.
func formatAmount(money int64) string {
	sign := ""
	if money < 0 {
		sign = "-"
		money = -money
	}
	return fmt.Sprintf("%s%d.%02d", sign, money/100, money%100)
}

// expiryDate renders the card expiry as MMYY.
func expiryDate(card models.CreditCard) string {
	return fmt.Sprintf("%02d%02d", card.Month, card.Year%100)
}
