package models

// Address is a postal address attached to a card transaction
type Address struct {
	Name     string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
	Phone    string
}

// Options carries the optional per-call parameters of a gateway operation.
//
// Address is accepted as a fallback when BillingAddress is nil. Description is
// recorded by callers but not sent to the gateway.
type Options struct {
	BillingAddress  *Address
	Address         *Address
	ShippingAddress *Address
	OrderID         string
	Email           string
	Description     string
}

// Billing returns the billing address, falling back to Address.
func (o Options) Billing() *Address {
	if o.BillingAddress != nil {
		return o.BillingAddress
	}
	return o.Address
}
