package e4

import "fmt"

// TransactionType is the two-digit code E4 uses to select the operation to perform
type TransactionType string

// E4 v11 transaction types
const (
	TransactionTypePurchase       TransactionType = "00"
	TransactionTypeAuthorize      TransactionType = "01"
	TransactionTypeCapture        TransactionType = "02"
	TransactionTypeForcedPost     TransactionType = "03"
	TransactionTypeRefund         TransactionType = "04"
	TransactionTypeAuthorizeOnly  TransactionType = "05"
	TransactionTypePaypalOrder    TransactionType = "07"
	TransactionTypeVoid           TransactionType = "13"
	TransactionTypeTaggedCapture  TransactionType = "32"
	TransactionTypeTaggedVoid     TransactionType = "33"
	TransactionTypeTaggedRefund   TransactionType = "34"
	TransactionTypeCashout        TransactionType = "83"
	TransactionTypeActivation     TransactionType = "85"
	TransactionTypeBalanceInquiry TransactionType = "86"
	TransactionTypeReload         TransactionType = "88"
	TransactionTypeDeactivation   TransactionType = "89"
)

// Action is a logical gateway operation
type Action string

const (
	ActionPurchase       Action = "purchase"
	ActionAuthorize      Action = "authorize"
	ActionCapture        Action = "capture"
	ActionForcedPost     Action = "forced_post"
	ActionRefund         Action = "refund"
	ActionAuthorizeOnly  Action = "authorize_only"
	ActionPaypalOrder    Action = "paypal_order"
	ActionVoid           Action = "void"
	ActionTaggedCapture  Action = "tagged_capture"
	ActionTaggedVoid     Action = "tagged_void"
	ActionTaggedRefund   Action = "tagged_refund"
	ActionCashout        Action = "cashout"
	ActionActivation     Action = "activation"
	ActionBalanceInquiry Action = "balance_inquiry"
	ActionReload         Action = "reload"
	ActionDeactivation   Action = "deactivation"
)

var transactionTypes = map[Action]TransactionType{
	ActionPurchase:       TransactionTypePurchase,
	ActionAuthorize:      TransactionTypeAuthorize,
	ActionCapture:        TransactionTypeCapture,
	ActionForcedPost:     TransactionTypeForcedPost,
	ActionRefund:         TransactionTypeRefund,
	ActionAuthorizeOnly:  TransactionTypeAuthorizeOnly,
	ActionPaypalOrder:    TransactionTypePaypalOrder,
	ActionVoid:           TransactionTypeVoid,
	ActionTaggedCapture:  TransactionTypeTaggedCapture,
	ActionTaggedVoid:     TransactionTypeTaggedVoid,
	ActionTaggedRefund:   TransactionTypeTaggedRefund,
	ActionCashout:        TransactionTypeCashout,
	ActionActivation:     TransactionTypeActivation,
	ActionBalanceInquiry: TransactionTypeBalanceInquiry,
	ActionReload:         TransactionTypeReload,
	ActionDeactivation:   TransactionTypeDeactivation,
}

// TransactionTypeFor returns the code registered for action.
// It panics for an unregistered action.
func TransactionTypeFor(action Action) TransactionType {
	code, ok := transactionTypes[action]
	if !ok {
		panic(fmt.Sprintf("e4: no transaction type registered for action %q", action))
	}
	return code
}
