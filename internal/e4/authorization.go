package e4

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const authorizationDelimiter = ";"

// Authorization identifies an earlier E4 transaction so that it can be captured,
// refunded or voided. Amount is in minor currency units.
//
// The string form is "reference;amount;tag". A reference or tag containing the
// delimiter produces a string that ParseAuthorization rejects.
type Authorization struct {
	Reference string
	Tag       string
	Amount    int64
}

// String encodes the authorization.
func (a Authorization) String() string {
	return strings.Join([]string{
		a.Reference,
		strconv.FormatInt(a.Amount, 10),
		a.Tag,
	}, authorizationDelimiter)
}

// TagNumber returns the transaction tag as the integer E4 expects on follow-up requests.
func (a Authorization) TagNumber() (int64, error) {
	tag, err := strconv.ParseInt(a.Tag, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: transaction tag %q is not numeric", ErrMalformedAuthorization, a.Tag)
	}
	return tag, nil
}

// ParseAuthorization decodes an authorization produced by Authorization.String.
// An empty amount field decodes to zero.
func ParseAuthorization(s string) (Authorization, error) {
	parts := strings.Split(s, authorizationDelimiter)
	if len(parts) != 3 {
		return Authorization{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedAuthorization, len(parts))
	}

	var amount int64
	if parts[1] != "" {
		parsed, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Authorization{}, fmt.Errorf("%w: amount %q is not an integer", ErrMalformedAuthorization, parts[1])
		}
		amount = parsed
	}

	return Authorization{
		Reference: parts[0],
		Amount:    amount,
		Tag:       parts[2],
	}, nil
}

// authorizationFrom builds the authorization for a response. Missing fields
// become empty strings and a missing, non-numeric or out of range amount becomes zero.
func authorizationFrom(params map[string]any) Authorization {
	return Authorization{
		Reference: stringField(params, "authorization_num"),
		Amount:    scaleToMinorUnits(params["amount"]),
		Tag:       tagField(params),
	}
}

// tagField returns transaction_tag, writing integral numbers such as 1.1111e4
// in plain decimal form so that TagNumber accepts them.
func tagField(params map[string]any) string {
	n, ok := params["transaction_tag"].(json.Number)
	if !ok {
		return stringField(params, "transaction_tag")
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

// scaleToMinorUnits converts the major-unit amount E4 reports into minor units.
func scaleToMinorUnits(v any) int64 {
	var raw string
	switch amount := v.(type) {
	case fmt.Stringer:
		raw = amount.String()
	case string:
		raw = amount
	default:
		return 0
	}

	major, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(major) || math.IsInf(major, 0) {
		return 0
	}

	minor := math.Round(major * 100)
	if minor >= math.MaxInt64 || minor < math.MinInt64 {
		return 0
	}
	return int64(minor)
}
